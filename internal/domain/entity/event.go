package entity

import "time"

// AlertChange names the mutation that produced an AlertEvent.
type AlertChange string

const (
	AlertChangeCreated       AlertChange = "created"
	AlertChangeReplaced      AlertChange = "replaced"
	AlertChangeStatus        AlertChange = "status"
	AlertChangeContactStatus AlertChange = "contact_status"
)

// AlertEvent is published after every successful alert store mutation.
type AlertEvent struct {
	RequestID  string      `json:"request_id,omitempty"` // For distributed tracing
	OwnerID    string      `json:"owner_id"`
	AlertID    string      `json:"alert_id"`
	Change     AlertChange `json:"change"`
	Status     AlertStatus `json:"status"`
	SentCount  int         `json:"sent_count"`
	TotalCount int         `json:"total_count"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewAlertEvent summarises the alert after a mutation.
func NewAlertEvent(alert *Alert, change AlertChange, at time.Time) *AlertEvent {
	return &AlertEvent{
		OwnerID:    alert.OwnerID,
		AlertID:    alert.ID.String(),
		Change:     change,
		Status:     alert.Status,
		SentCount:  alert.CountByStatus(NotificationStatusSent) + alert.CountByStatus(NotificationStatusDelivered),
		TotalCount: len(alert.Contacts),
		OccurredAt: at,
	}
}
