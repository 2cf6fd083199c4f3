package usecase

import (
	"context"
	"time"

	"sos/internal/domain/entity"
)

// TriggerInput is everything needed to raise an SOS alert.
type TriggerInput struct {
	Caller         entity.Caller
	Contacts       []entity.ContactInfo `validate:"required,min=1,dive"`
	Message        string               `validate:"required"`
	ReplaceActive  bool
	LocationBudget time.Duration // Zero means the configured default.
}

// AlertUsecase drives an SOS alert from trigger to completion.
type AlertUsecase interface {
	Trigger(ctx context.Context, input *TriggerInput) (*entity.AlertSummary, error)
	Cancel(ctx context.Context, ownerID string) error
	Resolve(ctx context.Context, ownerID string) error
	GetAlert(ctx context.Context, ownerID string) (*entity.Alert, error)

	// ListDeliveries returns the SMS tracking log of the owner's current alert.
	ListDeliveries(ctx context.Context, ownerID string) ([]*entity.DeliveryLog, error)

	// TriggerState reports the state of the owner's in-flight trigger, if any.
	TriggerState(ownerID string) (entity.TriggerState, bool)

	Subscribe(ctx context.Context, ownerID string, onChange AlertChangeFunc) (unsubscribe func(), err error)
}
