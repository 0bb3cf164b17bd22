// Package store is the storage adapter: one contract over customers, pets,
// services, bookings, portal users, admins, feedback and the notification log,
// implemented on GORM for SQLite, MySQL and PostgreSQL.
//
// Point lookups return (nil, nil) when nothing matches. Duplicate unique keys
// surface as ErrConflict; every other failure is returned wrapped and is
// treated by callers as a server error. Nothing here retries.
package store

import (
	"context"
	"errors"

	"pawcare-backend/models"
)

var (
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("unique constraint violation")
)

type Store interface {
	// Customers
	CreateCustomer(ctx context.Context, name, email, phone string) (uint, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, in models.CustomerUpdate) (bool, error)
	GetAllCustomers(ctx context.Context) ([]models.CustomerWithAccount, error)

	// Pets
	CreatePet(ctx context.Context, pet *models.Pet) (uint, error)
	GetPetsByCustomer(ctx context.Context, customerID uint) ([]models.Pet, error)

	// Services
	CreateService(ctx context.Context, svc *models.Service) (uint, error)
	GetAllServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	UpdateService(ctx context.Context, id uint, in models.ServiceUpdate) (bool, error)
	CountServices(ctx context.Context) (int64, error)

	// Bookings, always read back as joined views
	CreateBooking(ctx context.Context, b *models.Booking) (uint, error)
	GetAllBookings(ctx context.Context) ([]models.BookingView, error)
	GetBookingByID(ctx context.Context, id uint) (*models.BookingView, error)
	GetBookingsByCustomer(ctx context.Context, customerID uint) ([]models.BookingView, error)
	UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) (int64, error)
	DeleteBooking(ctx context.Context, id uint) (int64, error)

	// Portal users
	CreateUser(ctx context.Context, customerID uint, email, passwordHash string) (uint, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByCustomerID(ctx context.Context, customerID uint) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id uint, passwordHash string) (bool, error)
	UpdateUserEmail(ctx context.Context, customerID uint, email string) (bool, error)

	// Admins
	CreateAdmin(ctx context.Context, admin *models.Admin) (uint, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id uint) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, username string, in models.AdminUpdate) (bool, error)
	UpdateAdminPassword(ctx context.Context, username, passwordHash string) (bool, error)
	CountAdmins(ctx context.Context) (int64, error)

	// Feedback
	CreateFeedback(ctx context.Context, fb *models.Feedback) (uint, error)
	GetAllFeedback(ctx context.Context) ([]models.Feedback, error)
	GetPublicFeedback(ctx context.Context) ([]models.Feedback, error)
	GetFeedbackByID(ctx context.Context, id uint) (*models.Feedback, error)

	// Notification log
	CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error
	GetNotificationLogs(ctx context.Context, limit int) ([]models.NotificationLog, error)

	// Reporting
	GetDashboardStats(ctx context.Context, today string) (*models.DashboardStats, error)
	Snapshot(ctx context.Context) (*models.Snapshot, error)

	// Transaction runs fn against a store bound to a single transaction.
	// Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
