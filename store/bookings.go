package store

import (
	"context"

	"pawcare-backend/models"

	"gorm.io/gorm"
)

const bookingViewColumns = `bookings.*,
	customers.name AS customer_name,
	customers.email AS customer_email,
	customers.phone AS customer_phone,
	pets.name AS pet_name,
	pets.type AS pet_type,
	services.name AS service_name,
	services.price AS service_price`

// bookingViews starts a query over bookings joined with the display fields
// of their customer, pet and service.
func (s *GormStore) bookingViews(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("bookings").
		Select(bookingViewColumns).
		Joins("LEFT JOIN customers ON customers.id = bookings.customer_id").
		Joins("LEFT JOIN pets ON pets.id = bookings.pet_id").
		Joins("LEFT JOIN services ON services.id = bookings.service_id")
}

func (s *GormStore) CreateBooking(ctx context.Context, b *models.Booking) (uint, error) {
	if b.Status == "" {
		b.Status = models.StatusPending
	}
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return 0, translate(err)
	}
	return b.ID, nil
}

func (s *GormStore) GetAllBookings(ctx context.Context) ([]models.BookingView, error) {
	var views []models.BookingView
	err := s.bookingViews(ctx).
		Order("bookings.created_at DESC, bookings.id DESC").
		Scan(&views).Error
	return views, err
}

func (s *GormStore) GetBookingByID(ctx context.Context, id uint) (*models.BookingView, error) {
	var views []models.BookingView
	err := s.bookingViews(ctx).
		Where("bookings.id = ?", id).
		Limit(1).
		Scan(&views).Error
	if err != nil || len(views) == 0 {
		return nil, err
	}
	return &views[0], nil
}

func (s *GormStore) GetBookingsByCustomer(ctx context.Context, customerID uint) ([]models.BookingView, error) {
	var views []models.BookingView
	err := s.bookingViews(ctx).
		Where("bookings.customer_id = ?", customerID).
		Order("bookings.booking_date DESC, bookings.booking_time DESC, bookings.id DESC").
		Scan(&views).Error
	return views, err
}

// UpdateBookingStatus returns the number of bookings matched, 0 or 1.
func (s *GormStore) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	ok, err := applied(ctx, res, &models.Booking{}, "id = ?", id)
	if err != nil || !ok {
		return 0, err
	}
	return 1, nil
}

func (s *GormStore) DeleteBooking(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}
