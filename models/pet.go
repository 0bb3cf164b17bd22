package models

import "time"

type Pet struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customer_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Type         string    `json:"type" gorm:"size:100"`
	Breed        *string   `json:"breed" gorm:"size:100"`
	Age          *int      `json:"age"`
	SpecialNeeds *string   `json:"special_needs"`
	CreatedAt    time.Time `json:"created_at"`

	Bookings []Booking `json:"-" gorm:"foreignKey:PetID;constraint:OnDelete:SET NULL"`
}
