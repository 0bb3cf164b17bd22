package services

import (
	"context"
	"errors"
	"sync"

	"pawcare-backend/models"
)

type recordingSender struct {
	mu      sync.Mutex
	channel string
	err     error
	sent    []Notification
}

func (s *recordingSender) Channel() string { return s.channel }

func (s *recordingSender) Send(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if errors.Is(s.err, ErrSkipped) {
		return s.err
	}
	s.sent = append(s.sent, n)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type recordingLog struct {
	mu      sync.Mutex
	entries []models.NotificationLog
}

func (l *recordingLog) CreateNotificationLog(_ context.Context, entry *models.NotificationLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, *entry)
	return nil
}

func sampleBooking(status models.BookingStatus) *models.BookingView {
	pet := "Rex"
	petType := "Dog"
	return &models.BookingView{
		Booking: models.Booking{
			ID:          42,
			CustomerID:  1,
			ServiceID:   2,
			BookingDate: "2025-06-01",
			BookingTime: "10:00:00",
			Status:      status,
		},
		CustomerName:  "Ana",
		CustomerEmail: "ana@x.com",
		CustomerPhone: "+14155550123",
		PetName:       &pet,
		PetType:       &petType,
		ServiceName:   "Dog Walking",
		ServicePrice:  25,
	}
}
