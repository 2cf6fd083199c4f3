package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus is the lifecycle status of an Alert.
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusResolved  AlertStatus = "resolved"
	AlertStatusCancelled AlertStatus = "cancelled"
)

// IsTerminal reports whether the status can never be left again.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusCancelled
}

// IsValid reports whether the status is one of the known values.
func (s AlertStatus) IsValid() bool {
	return s == AlertStatusActive || s.IsTerminal()
}

// Alert is the durable record of one emergency episode for one user.
// At most one Alert per OwnerID may be active at a time.
type Alert struct {
	ID         uuid.UUID   `json:"id"`
	OwnerID    string      `json:"owner_id"`
	OwnerName  string      `json:"owner_name"`
	OwnerPhone string      `json:"owner_phone,omitempty"`
	Position   Position    `json:"position"`
	Message    string      `json:"message"`
	Status     AlertStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Contacts   []Contact   `json:"contacts"`
}

// IsActive reports whether the alert is still in progress.
func (a *Alert) IsActive() bool {
	return a != nil && a.Status == AlertStatusActive
}

// Clone returns a deep copy so callers never share contact slices or timestamps with the store.
func (a *Alert) Clone() *Alert {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.Contacts = make([]Contact, len(a.Contacts))
	for i, contact := range a.Contacts {
		if contact.NotifiedAt != nil {
			notifiedAt := *contact.NotifiedAt
			contact.NotifiedAt = &notifiedAt
		}
		cloned.Contacts[i] = contact
	}

	return &cloned
}

// FindContact returns the index of the first contact whose phone matches one of the candidates, or -1.
func (a *Alert) FindContact(phones ...string) int {
	for i, contact := range a.Contacts {
		for _, phone := range phones {
			if phone != "" && contact.Phone == phone {
				return i
			}
		}
	}

	return -1
}

// CountByStatus counts contacts in the given notification status.
func (a *Alert) CountByStatus(status NotificationStatus) int {
	count := 0
	for _, contact := range a.Contacts {
		if contact.NotificationStatus == status {
			count++
		}
	}

	return count
}
