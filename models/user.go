package models

import (
	"time"
)

// User holds customer portal credentials. One per customer.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customer_id" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
