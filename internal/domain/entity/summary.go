package entity

import "github.com/google/uuid"

// TriggerState is a state of the alert orchestration state machine.
type TriggerState string

const (
	TriggerStateIdle        TriggerState = "idle"
	TriggerStateLocating    TriggerState = "locating_position"
	TriggerStateCreating    TriggerState = "creating_alert"
	TriggerStateNotifying   TriggerState = "notifying"
	TriggerStateDispatching TriggerState = "dispatching_emergency_services"
	TriggerStateCompleted   TriggerState = "completed"
	TriggerStateCancelled   TriggerState = "cancelled"
	TriggerStateFailed      TriggerState = "failed"
)

// AlertSummary is returned to the trigger caller once orchestration ends.
type AlertSummary struct {
	AlertID            uuid.UUID    `json:"alert_id"`
	State              TriggerState `json:"state"`
	SentCount          int          `json:"sent_count"`
	TotalCount         int          `json:"total_count"`
	DispatchSuccess    bool         `json:"dispatch_success"`
	DispatchID         string       `json:"dispatch_id,omitempty"`
	DispatchError      string       `json:"dispatch_error,omitempty"`
	UsedCachedPosition bool         `json:"used_cached_position"`
	Cancelled          bool         `json:"cancelled"`
	Position           Position     `json:"position"`
}
