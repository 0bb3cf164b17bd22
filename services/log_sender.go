// services/log_sender.go
package services

import (
	"context"

	"pawcare-backend/logger"
)

// LogSender writes notifications to the log instead of delivering them.
// It stands in for email when SMTP is not configured.
type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Channel() string { return ChannelLog }

func (s *LogSender) Send(_ context.Context, n Notification) error {
	fields := logger.Fields{
		"kind":    string(n.Kind),
		"to":      n.To,
		"subject": n.Subject(),
	}
	if n.Booking != nil {
		fields["booking_id"] = n.Booking.ID
		fields["status"] = string(n.Booking.Status)
	}
	if n.TempPassword != "" {
		fields["temp_password"] = n.TempPassword
	}
	s.log.Info("notification (not delivered, smtp disabled)", fields)
	return nil
}
