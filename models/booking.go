package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Notifies reports whether moving a booking into s should tell the customer.
func (s BookingStatus) Notifies() bool {
	return s == StatusConfirmed || s == StatusCompleted || s == StatusCancelled
}

type Booking struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	CustomerID  uint          `json:"customer_id" gorm:"index;not null"`
	PetID       *uint         `json:"pet_id" gorm:"index"`
	ServiceID   uint          `json:"service_id" gorm:"index;not null"`
	BookingDate string        `json:"booking_date" gorm:"size:10;not null"` // YYYY-MM-DD
	BookingTime string        `json:"booking_time" gorm:"size:8;not null"`  // HH:MM:SS
	Status      BookingStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	Notes       *string       `json:"notes"`
	CreatedAt   time.Time     `json:"created_at" gorm:"index"`
}

// BookingView is a booking joined with the display fields of its customer,
// pet and service.
type BookingView struct {
	Booking
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	PetName       *string `json:"pet_name"`
	PetType       *string `json:"pet_type"`
	ServiceName   string  `json:"service_name"`
	ServicePrice  float64 `json:"service_price"`
}
