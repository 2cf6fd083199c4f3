package entity

import (
	"time"

	"github.com/google/uuid"
)

// FailureClass classifies a provider failure and decides whether a fallback provider is tried.
type FailureClass string

const (
	FailureRetryable     FailureClass = "retryable"
	FailureQuotaExceeded FailureClass = "quota_exceeded"
	FailureFatal         FailureClass = "fatal"
)

// AllowsFallback reports whether the next provider in the chain should be tried.
func (c FailureClass) AllowsFallback() bool {
	return c == FailureRetryable || c == FailureQuotaExceeded
}

// SendOutcome is the result of sending one emergency message to one contact.
type SendOutcome struct {
	Sent           bool         `json:"sent"`
	MessageID      string       `json:"message_id,omitempty"`
	Provider       string       `json:"provider,omitempty"`
	Reason         string       `json:"reason,omitempty"`
	Classification FailureClass `json:"classification,omitempty"`
	Phone          string       `json:"phone"`    // The normalised E.164 number the message went to.
	Attempts       int          `json:"attempts"` // Number of provider invocations, including the fallback.
}

// Status maps the outcome onto the contact notification status.
func (o *SendOutcome) Status() NotificationStatus {
	if o.Sent {
		return NotificationStatusSent
	}

	return NotificationStatusFailed
}

// DeliveryLog is one row of the SMS tracking log, written for every send outcome.
type DeliveryLog struct {
	ID           uuid.UUID `json:"id"`
	AlertID      uuid.UUID `json:"alert_id"`
	OwnerID      string    `json:"owner_id"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	Status       string    `json:"status"`
	Provider     string    `json:"provider"`
	MessageID    string    `json:"message_id"`
	ErrorMessage string    `json:"error_message"`
	RetryCount   int       `json:"retry_count"`
	SentAt       time.Time `json:"sent_at"`
}
