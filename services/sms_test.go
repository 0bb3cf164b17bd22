package services

import (
	"context"
	"errors"
	"testing"

	"pawcare-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeTwilio struct {
	params []*twilioApi.CreateMessageParams
	err    error
}

func (f *fakeTwilio) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSMSSender_StatusChangesOnly(t *testing.T) {
	client := &fakeTwilio{}
	s := &SMSSender{from: "+15550000000", client: client}
	ctx := context.Background()

	err := s.Send(ctx, Notification{Kind: KindBookingReceived, Phone: "+14155550123", Booking: sampleBooking(models.StatusPending)})
	assert.ErrorIs(t, err, ErrSkipped)

	err = s.Send(ctx, Notification{Kind: KindBookingStatus, Booking: sampleBooking(models.StatusConfirmed)})
	assert.ErrorIs(t, err, ErrSkipped, "no phone number")

	err = s.Send(ctx, Notification{Kind: KindBookingStatus, Phone: "+14155550123", Booking: sampleBooking(models.StatusConfirmed)})
	require.NoError(t, err)
	require.Len(t, client.params, 1)
	assert.Equal(t, "+14155550123", *client.params[0].To)
	assert.Equal(t, "+15550000000", *client.params[0].From)
	assert.Contains(t, *client.params[0].Body, "confirmed")
}

func TestSMSSender_WrapsTwilioErrors(t *testing.T) {
	s := &SMSSender{from: "+15550000000", client: &fakeTwilio{err: errors.New("bad number")}}

	err := s.Send(context.Background(), Notification{Kind: KindBookingStatus, Phone: "+1", Booking: sampleBooking(models.StatusCancelled)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad number")
}
