package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jwalitptl/clinic-api/config"
)

// Sender delivers notification mail. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a sender from the smtp config section.
func NewSMTPSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NopSender discards mail. Used when smtp is disabled.
type NopSender struct{}

func (NopSender) Send(string, string, string) error { return nil }
