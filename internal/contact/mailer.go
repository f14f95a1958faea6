package contact

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/richxcame/agency-site/pkg/config"
)

// Email is a single outbound message.
type Email struct {
	To          string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers one email. Implementations do not retry; a failed send
// surfaces as an error to the caller.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SMTPMailer sends mail over an authenticated SMTP connection.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	send func(m *gomail.Message) error
}

// NewSMTPMailer creates a mailer for the configured SMTP server.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPMailer{
		cfg:  cfg,
		send: func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// Send implements Mailer
func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email.To)
	if email.ReplyTo != "" {
		msg.SetHeader("Reply-To", email.ReplyTo)
	}
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/html", email.HTMLBody)

	for _, att := range email.Attachments {
		att := att
		msg.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(att.Data))
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}),
		)
	}

	if err := m.send(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}
