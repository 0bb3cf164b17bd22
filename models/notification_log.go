// models/notification_log.go
package models

import (
	"time"
)

type NotificationLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Kind         string    `json:"kind" gorm:"size:30;index"`
	Channel      string    `json:"channel" gorm:"size:20"` // email, sms, log
	Recipient    string    `json:"recipient" gorm:"size:255"`
	Subject      string    `json:"subject" gorm:"size:255"`
	Status       string    `json:"status" gorm:"size:20"` // sent or failed; skipped sends are not recorded
	ErrorMessage string    `json:"error_message,omitempty"`
	ReferenceID  *uint     `json:"reference_id"` // booking or feedback id
	SentAt       time.Time `json:"sent_at" gorm:"index"`
}
