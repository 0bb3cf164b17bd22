package store

import (
	"context"

	"pawcare-backend/models"
)

const upcomingLimit = 5

// GetDashboardStats aggregates the admin overview. today is YYYY-MM-DD and
// bounds the upcoming bookings list.
func (s *GormStore) GetDashboardStats(ctx context.Context, today string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{BookingsByStatus: map[string]int64{}}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, status := range []models.BookingStatus{models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled} {
		stats.BookingsByStatus[string(status)] = 0
	}
	for _, row := range byStatus {
		stats.BookingsByStatus[row.Status] = row.Count
	}

	var revenue struct{ Total float64 }
	if err := db.Table("bookings").
		Select("COALESCE(SUM(services.price), 0) AS total").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.status = ?", models.StatusCompleted).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.Revenue = revenue.Total

	var fb struct {
		Count int64
		Avg   float64
	}
	if err := db.Model(&models.Feedback{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Scan(&fb).Error; err != nil {
		return nil, err
	}
	stats.FeedbackCount = fb.Count
	stats.AverageRating = fb.Avg

	if err := s.bookingViews(ctx).
		Where("bookings.booking_date >= ?", today).
		Where("bookings.status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("bookings.booking_date ASC, bookings.booking_time ASC").
		Limit(upcomingLimit).
		Scan(&stats.UpcomingBookings).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Snapshot reads every table the exporter writes out.
func (s *GormStore) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	var err error

	if snap.Customers, err = s.GetAllCustomers(ctx); err != nil {
		return nil, err
	}
	if err = s.db.WithContext(ctx).Order("id ASC").Find(&snap.Pets).Error; err != nil {
		return nil, err
	}
	if snap.Services, err = s.GetAllServices(ctx); err != nil {
		return nil, err
	}
	if snap.Bookings, err = s.GetAllBookings(ctx); err != nil {
		return nil, err
	}
	if snap.Feedback, err = s.GetAllFeedback(ctx); err != nil {
		return nil, err
	}
	return &snap, nil
}
