package email

import (
	"fmt"

	"sahyogjeevan/internal/config"
	"sahyogjeevan/internal/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails to employers.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through the configured SMTP relay via gomail.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	from := cfg.SMTP.FromEmail
	if cfg.SMTP.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SMTP.FromName, cfg.SMTP.FromEmail)
	}
	return &SMTPSender{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

// NoopSender is wired when SMTP is not configured. Messages are logged and
// dropped so the application flow never depends on a mail relay.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error {
	logger.Debug("email sending disabled, dropping message", "to", to, "subject", subject)
	return nil
}
