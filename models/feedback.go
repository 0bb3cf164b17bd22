package models

import "time"

type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Category  string    `json:"category" gorm:"size:100;not null"`
	Message   string    `json:"message" gorm:"not null"`
	Public    bool      `json:"public" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName keeps the singular table name used by every deployment so far.
func (Feedback) TableName() string { return "feedback" }
