// services/notification.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pawcare-backend/logger"
	"pawcare-backend/models"
)

type Kind string

const (
	KindBookingReceived Kind = "booking_received"
	KindBookingStatus   Kind = "booking_status"
	KindPasswordReset   Kind = "password_reset"
	KindNewFeedback     Kind = "new_feedback"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelLog   = "log"

	sendTimeout = 30 * time.Second
)

// ErrSkipped is returned by a Sender for notifications its channel does not carry.
var ErrSkipped = errors.New("notification not sent on this channel")

// Notification is one message to one recipient.
type Notification struct {
	Kind         Kind
	To           string // email address
	Phone        string // optional, used by SMS
	Operator     bool   // addressed to the business rather than the customer
	Booking      *models.BookingView
	Feedback     *models.Feedback
	TempPassword string
}

func (n Notification) Subject() string {
	switch n.Kind {
	case KindBookingReceived:
		if n.Operator && n.Booking != nil {
			return fmt.Sprintf("New Booking #%d - %s", n.Booking.ID, n.Booking.CustomerName)
		}
		return "Booking Received - PawCare"
	case KindBookingStatus:
		if n.Booking != nil {
			switch n.Booking.Status {
			case models.StatusConfirmed:
				return "Booking Confirmed - PawCare"
			case models.StatusCompleted:
				return "Service Completed - PawCare"
			case models.StatusCancelled:
				return "Booking Cancelled - PawCare"
			}
		}
		return "Booking Update - PawCare"
	case KindPasswordReset:
		return "Password Reset - PawCare"
	case KindNewFeedback:
		if n.Feedback != nil {
			return fmt.Sprintf("New Feedback (%d/5) - %s", n.Feedback.Rating, n.Feedback.Category)
		}
		return "New Feedback - PawCare"
	}
	return "PawCare"
}

func (n Notification) recipient(channel string) string {
	if channel == ChannelSMS {
		return n.Phone
	}
	return n.To
}

func (n Notification) referenceID() *uint {
	switch {
	case n.Booking != nil:
		id := n.Booking.ID
		return &id
	case n.Feedback != nil:
		id := n.Feedback.ID
		return &id
	}
	return nil
}

// Sender delivers a notification over one channel.
type Sender interface {
	Channel() string
	Send(ctx context.Context, n Notification) error
}

// NotificationLog records delivery attempts.
type NotificationLog interface {
	CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error
}

// Dispatcher runs notifications in the background once the request that
// caused them has committed. Failures are logged and recorded, never returned.
type Dispatcher struct {
	senders []Sender
	logs    NotificationLog
	log     logger.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(logs NotificationLog, log logger.Logger, senders ...Sender) *Dispatcher {
	return &Dispatcher{
		senders: senders,
		logs:    logs,
		log:     log.With(logger.Fields{"component": "notifications"}),
	}
}

// Dispatch hands n to every sender on its own goroutine and returns at once.
func (d *Dispatcher) Dispatch(n Notification) {
	for _, s := range d.senders {
		d.wg.Add(1)
		go func(s Sender) {
			defer d.wg.Done()
			d.deliver(s, n)
		}(s)
	}
}

// Wait blocks until every dispatched notification has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(s Sender, n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	channel := s.Channel()
	fields := logger.Fields{
		"kind":      string(n.Kind),
		"channel":   channel,
		"recipient": n.recipient(channel),
	}

	err := s.Send(ctx, n)
	if errors.Is(err, ErrSkipped) {
		return
	}

	entry := &models.NotificationLog{
		Kind:        string(n.Kind),
		Channel:     channel,
		Recipient:   n.recipient(channel),
		Subject:     n.Subject(),
		Status:      "sent",
		ReferenceID: n.referenceID(),
		SentAt:      time.Now(),
	}
	if err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
		fields["error"] = err
		d.log.Error("notification failed", fields)
	} else {
		d.log.Info("notification sent", fields)
	}

	if d.logs == nil {
		return
	}
	if err := d.logs.CreateNotificationLog(ctx, entry); err != nil {
		d.log.Error("record notification", logger.Fields{"kind": string(n.Kind), "error": err})
	}
}
