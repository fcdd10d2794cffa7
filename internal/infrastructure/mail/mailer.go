package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/castingdesk/casting-api/internal/core/ports"
)

// Config captures the SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer delivers messages over SMTP. Each Send dials a fresh connection,
// which keeps the mailer stateless across worker goroutines.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send performs one blocking delivery attempt. The context deadline is not
// honoured mid-dial because the underlying client has no context support, so
// we only check for cancellation up front.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	if msg.HTML != "" {
		message.SetBody("text/html", msg.HTML)
		if msg.Text != "" {
			message.AddAlternative("text/plain", msg.Text)
		}
	} else {
		message.SetBody("text/plain", msg.Text)
	}

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}
