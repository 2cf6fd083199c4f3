package entity

import "time"

// NotificationStatus is the delivery state of a single contact notification.
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusFailed    NotificationStatus = "failed"
)

// IsValid reports whether the status is one of the known values.
func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusDelivered, NotificationStatusFailed:
		return true
	default:
		return false
	}
}

// ContactInfo is an emergency contact as supplied by the contact collaborator.
type ContactInfo struct {
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"required,max=32"`
}

// Contact is an emergency contact owned by an Alert, together with its notification state.
type Contact struct {
	Name               string             `json:"name"`
	Phone              string             `json:"phone"`
	NotificationStatus NotificationStatus `json:"notification_status"`
	ProviderMessageID  string             `json:"provider_message_id,omitempty"`
	Provider           string             `json:"provider,omitempty"`
	ErrorDetail        string             `json:"error_detail,omitempty"`
	Attempts           int                `json:"attempts,omitempty"`
	NotifiedAt         *time.Time         `json:"notified_at,omitempty"`
}

// NewPendingContact creates a contact that has not been notified yet.
func NewPendingContact(info ContactInfo) Contact {
	return Contact{
		Name:               info.Name,
		Phone:              info.Phone,
		NotificationStatus: NotificationStatusPending,
	}
}

// ContactUpdate carries the outcome of a notification attempt for one contact.
type ContactUpdate struct {
	Phone     string
	Status    NotificationStatus
	MessageID string
	Provider  string
	Error     string
	Attempts  int
	At        time.Time
}

// Apply replaces the notification fields of the contact with the update.
func (c *Contact) Apply(update ContactUpdate) {
	c.NotificationStatus = update.Status
	c.ProviderMessageID = update.MessageID
	c.Provider = update.Provider
	c.ErrorDetail = update.Error
	c.Attempts = update.Attempts

	notifiedAt := update.At
	c.NotifiedAt = &notifiedAt
}
