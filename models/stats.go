package models

// DashboardStats is the admin overview computed by the store.
type DashboardStats struct {
	TotalCustomers   int64            `json:"totalCustomers"`
	TotalBookings    int64            `json:"totalBookings"`
	BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
	Revenue          float64          `json:"revenue"` // completed bookings only
	FeedbackCount    int64            `json:"feedbackCount"`
	AverageRating    float64          `json:"averageRating"`
	UpcomingBookings []BookingView    `json:"upcomingBookings"`
}

// Snapshot is the full relational state handed to the exporter.
type Snapshot struct {
	Customers []CustomerWithAccount
	Pets      []Pet
	Services  []Service
	Bookings  []BookingView
	Feedback  []Feedback
}
