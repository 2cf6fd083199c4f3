// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sos/internal/domain/entity"
)

// AlertRepository is a document-style store of alerts keyed by owner ID.
// Each owner has at most one document; saving replaces it.
type AlertRepository interface {
	// FindAlertByOwner returns the owner's alert document, or nil when none exists.
	FindAlertByOwner(ctx context.Context, ownerID string) (*entity.Alert, error)

	// SaveAlert writes the full alert document for alert.OwnerID.
	SaveAlert(ctx context.Context, alert *entity.Alert) error
}
