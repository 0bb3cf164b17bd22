package models

import "time"

type Admin struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"size:255;uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	ProfilePicture *string   `json:"profile_picture"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"`
	CreatedAt      time.Time `json:"created_at"`
}

type AdminUpdate struct {
	Username       *string
	Email          *string
	ProfilePicture *string
}
