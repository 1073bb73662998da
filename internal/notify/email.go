package notify

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"guestdesk/internal/config"
	"guestdesk/internal/models"
)

// Mailer sends guest-facing booking emails over SMTP. Every caller treats a
// send failure as non-fatal.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.SMTP) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) BookingConfirmed(b *models.Booking) error {
	content := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been confirmed!</p>
		<p><strong>Room:</strong> %s<br>
		<strong>Dates:</strong> %s to %s</p>`,
		b.Name, b.RoomType, b.CheckIn, b.CheckOut)

	return m.send(b.UserID, "Booking Confirmed", content)
}

func (m *Mailer) BookingRejected(b *models.Booking) error {
	content := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, we do not have availability for the requested dates.</p>
		<p>Please consider booking different dates. We apologize for the inconvenience.</p>`,
		b.Name)

	return m.send(b.UserID, "Booking Not Available", content)
}

func (m *Mailer) send(to, subject, content string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", content)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
