package sms

import "sahyogjeevan/internal/logger"

// Provider delivers short messages to a phone number. The production
// implementation is a gateway integration that plugs in here; the service
// layer only sees this interface.
type Provider interface {
	Send(phone, message string) error
}

// LogProvider writes the message to the application log instead of sending
// it. This is the default channel until a gateway is wired, and what the
// OTP end-to-end flow reads during development.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(phone, message string) error {
	logger.Info("sms (log channel)", "phone", phone, "message", message)
	return nil
}
