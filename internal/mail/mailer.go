package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"hostel-manager-backend/config"
)

// Mailer sends account-recovery mail. Split from the SMTP implementation so
// handlers can be tested with a fake.
type Mailer interface {
	SendTempPassword(ctx context.Context, to, username, tempPassword string) error
}

// SMTPMailer sends mail through a configured SMTP relay.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg *config.SMTPConfig) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// SendTempPassword mails a freshly generated temporary password to the owner.
func (m *SMTPMailer) SendTempPassword(ctx context.Context, to, username, tempPassword string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Hostel Manager: temporary password")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Hello %s,\n\nYour password was reset. Log in with this temporary password and change it right away:\n\n%s\n",
		username, tempPassword,
	))
	return m.client.DialAndSendWithContext(ctx, msg)
}
