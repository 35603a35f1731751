package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/akhilesh-av/Salon-akhil-freelance/config"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// SMTPNotifier emails booking updates to the customer over plain SMTP
// with STARTTLS.
type SMTPNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// NewSMTPNotifier builds a notifier from the loaded config. It returns
// nil when SMTP_HOST is not set; callers should fall back to NoopNotifier.
func NewSMTPNotifier() *SMTPNotifier {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPNotifier{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}
}

func (n *SMTPNotifier) Notify(ctx context.Context, b *models.Booking, event Event) error {
	subject, body := composeEmail(b, event)
	return n.send(b.CustomerEmail, subject, body)
}

func composeEmail(b *models.Booking, event Event) (subject, body string) {
	details := fmt.Sprintf(
		"Booking ID: %s\nService: %s\nDate: %s\nTime: %s\nPrice: $%.2f\nStatus: %s\n",
		b.ID, b.ServiceTitle, b.Date, b.TimeSlot, b.FinalPrice, b.Status,
	)
	switch event {
	case EventBookingCreated:
		subject = "Booking Confirmation - Salon Shop"
		body = fmt.Sprintf("Dear %s,\n\nThank you for booking with us! Your appointment has been created and is awaiting confirmation.\n\n%s", b.CustomerName, details)
	case EventBookingCancelled:
		subject = "Booking Cancelled - Salon Shop"
		body = fmt.Sprintf("Dear %s,\n\nYour booking has been cancelled.\n\n%s", b.CustomerName, details)
	default:
		subject = fmt.Sprintf("Booking %s - Salon Shop", b.Status)
		body = fmt.Sprintf("Dear %s,\n\nYour booking status has been updated to %s.\n\n%s", b.CustomerName, b.Status, details)
	}
	return subject, body
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.Host, n.Port)
	auth := smtp.PlainAuth("", n.Username, n.Password, n.Host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", n.FromName, n.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, n.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
