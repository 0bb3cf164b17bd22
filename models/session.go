package models

import "time"

// SessionRecord is a server-side session persisted by the database session store.
type SessionRecord struct {
	Token     string    `gorm:"primaryKey;size:64"`
	Data      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

func (SessionRecord) TableName() string { return "sessions" }
