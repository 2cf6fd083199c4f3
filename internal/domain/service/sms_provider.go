package service

import "context"

// SMSProvider sends a plain-text SMS to an E.164 number.
// Failures must be returned as *errors.NotificationError so the gateway can classify them.
type SMSProvider interface {
	// Name identifies the provider in logs and delivery records.
	Name() string

	// SendSMS returns the provider's message ID on success.
	SendSMS(ctx context.Context, phone, body string) (messageID string, err error)
}
