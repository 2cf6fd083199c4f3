package usecase

import (
	"context"

	"sos/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOptions controls how Create treats an existing active alert.
type CreateOptions struct {
	// ReplaceActive overwrites an active alert instead of rejecting the new one.
	ReplaceActive bool
}

// AlertChangeFunc receives a snapshot of the owner's alert, nil when none exists.
type AlertChangeFunc func(alert *entity.Alert)

// AlertStore is the per-owner alert record with single-writer mutations and change subscriptions.
type AlertStore interface {
	Create(ctx context.Context, alert *entity.Alert, opts CreateOptions) (uuid.UUID, error)
	Get(ctx context.Context, ownerID string) (*entity.Alert, error)
	UpdateStatus(ctx context.Context, ownerID string, status entity.AlertStatus) error
	UpdateContactStatus(ctx context.Context, ownerID string, update entity.ContactUpdate) error

	// Subscribe delivers the current snapshot before returning, then one snapshot per mutation in order.
	Subscribe(ctx context.Context, ownerID string, onChange AlertChangeFunc) (unsubscribe func(), err error)
}
