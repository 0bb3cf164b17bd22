package models

type Service struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"size:255;not null"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	DurationMinutes int     `json:"duration_minutes" gorm:"not null"` // in minutes

	Bookings []Booking `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

type ServiceUpdate struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
}

// DefaultServices is the catalogue seeded into an empty services table.
var DefaultServices = []Service{
	{Name: "Pet Sitting", Description: "In-home care", Price: 45.00, DurationMinutes: 60},
	{Name: "Dog Walking", Description: "Exercise and adventures", Price: 25.00, DurationMinutes: 30},
	{Name: "Pet Boarding", Description: "Overnight stays", Price: 75.00, DurationMinutes: 1440},
	{Name: "Grooming", Description: "Professional grooming", Price: 60.00, DurationMinutes: 90},
	{Name: "Vet Visits", Description: "Transportation to vet", Price: 35.00, DurationMinutes: 120},
	{Name: "Training Support", Description: "Training routines", Price: 50.00, DurationMinutes: 60},
}
