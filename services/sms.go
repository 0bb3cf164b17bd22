// services/sms.go
package services

import (
	"context"
	"fmt"

	"pawcare-backend/config"
	"pawcare-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender texts customers when their booking is confirmed, completed or
// cancelled. Every other notification kind is skipped.
type SMSSender struct {
	from   string
	client messageCreator
}

func NewSMSSender(cfg config.TwilioConfig) *SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &SMSSender{from: cfg.From, client: client.Api}
}

func (s *SMSSender) Channel() string { return ChannelSMS }

func (s *SMSSender) Send(ctx context.Context, n Notification) error {
	if n.Kind != KindBookingStatus || n.Phone == "" || n.Booking == nil || !n.Booking.Status.Notifies() {
		return ErrSkipped
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.Phone)
	params.SetFrom(s.from)
	params.SetBody(smsBody(n.Booking))

	resp, err := s.client.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return fmt.Errorf("twilio: no message SID returned")
	}
	return nil
}

func smsBody(b *models.BookingView) string {
	switch b.Status {
	case models.StatusConfirmed:
		return fmt.Sprintf("PawCare: your %s booking on %s at %s is confirmed.", b.ServiceName, b.BookingDate, b.BookingTime)
	case models.StatusCompleted:
		return fmt.Sprintf("PawCare: your %s service is complete. Thank you!", b.ServiceName)
	default:
		return fmt.Sprintf("PawCare: your %s booking on %s has been cancelled.", b.ServiceName, b.BookingDate)
	}
}
