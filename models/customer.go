package models

import (
	"time"
)

type Customer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone          string    `json:"phone" gorm:"size:50"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`

	Pets     []Pet     `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Bookings []Booking `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	User     *User     `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// CustomerWithAccount is a customer row plus its portal registration status.
type CustomerWithAccount struct {
	Customer
	Registered bool    `json:"registered"`
	UserEmail  *string `json:"user_email"`
}

// CustomerUpdate carries the fields of a partial customer update; nil = keep.
type CustomerUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	ProfilePicture *string
}
