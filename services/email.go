// services/email.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"pawcare-backend/config"
	"pawcare-backend/models"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers every notification kind over SMTP.
type EmailSender struct {
	from string
	dial func() (gomail.SendCloser, error)
}

func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &EmailSender{
		from: cfg.From,
		dial: d.Dial,
	}
}

func (s *EmailSender) Channel() string { return ChannelEmail }

func (s *EmailSender) Send(ctx context.Context, n Notification) error {
	if n.To == "" {
		return ErrSkipped
	}
	body, err := renderEmail(n)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "PawCare")
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject())
	m.SetBody("text/html", body)

	if err := ctx.Err(); err != nil {
		return err
	}
	conn, err := s.dial()
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	return gomail.Send(conn, m)
}

type emailView struct {
	Subject      string
	Booking      *models.BookingView
	Feedback     *models.Feedback
	TempPassword string
	Headline     string
	Message      string
}

var statusCopy = map[models.BookingStatus][2]string{
	models.StatusConfirmed: {"Booking Confirmed", "Great news! Your booking has been confirmed."},
	models.StatusCompleted: {"Service Completed", "Your service has been completed successfully. Thank you for choosing PawCare!"},
	models.StatusCancelled: {"Booking Cancelled", "Your booking has been cancelled. Please contact us if you would like to reschedule."},
}

func renderEmail(n Notification) (string, error) {
	view := emailView{
		Subject:      n.Subject(),
		Booking:      n.Booking,
		Feedback:     n.Feedback,
		TempPassword: n.TempPassword,
	}

	var name string
	switch n.Kind {
	case KindBookingReceived:
		name = "booking_received"
		if n.Operator {
			name = "booking_operator"
		}
	case KindBookingStatus:
		name = "booking_status"
		if n.Booking != nil {
			if c, ok := statusCopy[n.Booking.Status]; ok {
				view.Headline, view.Message = c[0], c[1]
			}
		}
	case KindPasswordReset:
		name = "password_reset"
	case KindNewFeedback:
		name = "new_feedback"
	default:
		return "", fmt.Errorf("no email template for %q", n.Kind)
	}
	if (n.Kind == KindBookingReceived || n.Kind == KindBookingStatus) && n.Booking == nil {
		return "", fmt.Errorf("%s notification without booking", n.Kind)
	}
	if n.Kind == KindNewFeedback && n.Feedback == nil {
		return "", fmt.Errorf("%s notification without feedback", n.Kind)
	}

	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("render %s email: %w", name, err)
	}
	return buf.String(), nil
}

var emailTemplates = template.Must(template.New("email").Parse(`
{{define "booking_details"}}
<table cellpadding="6" style="border-collapse:collapse">
  <tr><td><strong>Booking</strong></td><td>#{{.ID}}</td></tr>
  <tr><td><strong>Service</strong></td><td>{{.ServiceName}}</td></tr>
  <tr><td><strong>Date</strong></td><td>{{.BookingDate}}</td></tr>
  <tr><td><strong>Time</strong></td><td>{{.BookingTime}}</td></tr>
  {{with .PetName}}<tr><td><strong>Pet</strong></td><td>{{.}}{{with $.PetType}} ({{.}}){{end}}</td></tr>{{end}}
  <tr><td><strong>Status</strong></td><td>{{.Status}}</td></tr>
</table>
{{end}}

{{define "booking_received"}}
<h2>Booking Received</h2>
<p>Hi {{.Booking.CustomerName}},</p>
<p>Thank you for booking with PawCare. We have received your request and will confirm it shortly.</p>
{{template "booking_details" .Booking}}
<p>The PawCare Team</p>
{{end}}

{{define "booking_operator"}}
<h2>New Booking #{{.Booking.ID}}</h2>
<p><strong>{{.Booking.CustomerName}}</strong> &lt;{{.Booking.CustomerEmail}}&gt;, {{.Booking.CustomerPhone}}</p>
{{template "booking_details" .Booking}}
{{with .Booking.Notes}}<p><strong>Notes:</strong> {{.}}</p>{{end}}
{{end}}

{{define "booking_status"}}
<h2>{{.Headline}}</h2>
<p>Hi {{.Booking.CustomerName}},</p>
<p>{{.Message}}</p>
{{template "booking_details" .Booking}}
<p>The PawCare Team</p>
{{end}}

{{define "password_reset"}}
<h2>Password Reset</h2>
<p>Your temporary password is:</p>
<p style="font-size:20px"><code>{{.TempPassword}}</code></p>
<p>Please log in and change it right away.</p>
{{end}}

{{define "new_feedback"}}
<h2>New Feedback</h2>
<p><strong>From:</strong> {{.Feedback.Name}} &lt;{{.Feedback.Email}}&gt;</p>
<p><strong>Rating:</strong> {{.Feedback.Rating}}/5</p>
<p><strong>Category:</strong> {{.Feedback.Category}}</p>
<p>{{.Feedback.Message}}</p>
{{end}}
`))
