package services

import (
	"errors"
	"testing"

	"pawcare-backend/logger"
	"pawcare-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversAndRecords(t *testing.T) {
	email := &recordingSender{channel: ChannelEmail}
	logs := &recordingLog{}
	d := NewDispatcher(logs, logger.Nop(), email)

	d.Dispatch(Notification{Kind: KindBookingStatus, To: "ana@x.com", Booking: sampleBooking(models.StatusConfirmed)})
	d.Wait()

	require.Equal(t, 1, email.count())
	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, "booking_status", entry.Kind)
	assert.Equal(t, ChannelEmail, entry.Channel)
	assert.Equal(t, "ana@x.com", entry.Recipient)
	assert.Equal(t, "sent", entry.Status)
	assert.Equal(t, "Booking Confirmed - PawCare", entry.Subject)
	require.NotNil(t, entry.ReferenceID)
	assert.Equal(t, uint(42), *entry.ReferenceID)
}

func TestDispatcher_FailuresAreRecordedNotReturned(t *testing.T) {
	failing := &recordingSender{channel: ChannelEmail, err: errors.New("smtp down")}
	logs := &recordingLog{}
	d := NewDispatcher(logs, logger.Nop(), failing)

	d.Dispatch(Notification{Kind: KindPasswordReset, To: "ana@x.com", TempPassword: "abc"})
	d.Wait()

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "failed", logs.entries[0].Status)
	assert.Equal(t, "smtp down", logs.entries[0].ErrorMessage)
}

func TestDispatcher_SkippedChannelsLeaveNoRecord(t *testing.T) {
	email := &recordingSender{channel: ChannelEmail}
	sms := &recordingSender{channel: ChannelSMS, err: ErrSkipped}
	logs := &recordingLog{}
	d := NewDispatcher(logs, logger.Nop(), email, sms)

	d.Dispatch(Notification{Kind: KindNewFeedback, To: "owner@pawcare.test", Operator: true, Feedback: &models.Feedback{ID: 3, Rating: 5, Category: "general"}})
	d.Wait()

	assert.Equal(t, 1, email.count())
	assert.Equal(t, 0, sms.count())
	require.Len(t, logs.entries, 1)
	assert.Equal(t, ChannelEmail, logs.entries[0].Channel)
}

func TestNotificationSubject(t *testing.T) {
	b := sampleBooking(models.StatusPending)
	assert.Equal(t, "Booking Received - PawCare", Notification{Kind: KindBookingReceived, Booking: b}.Subject())
	assert.Equal(t, "New Booking #42 - Ana", Notification{Kind: KindBookingReceived, Booking: b, Operator: true}.Subject())
	assert.Equal(t, "Service Completed - PawCare", Notification{Kind: KindBookingStatus, Booking: sampleBooking(models.StatusCompleted)}.Subject())
	assert.Equal(t, "Password Reset - PawCare", Notification{Kind: KindPasswordReset}.Subject())
}
