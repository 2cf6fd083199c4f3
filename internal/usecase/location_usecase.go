package usecase

import (
	"context"
	"time"

	"sos/internal/domain/entity"
)

// LocationUsecase resolves the caller's current position.
type LocationUsecase interface {
	// Resolve returns a fresh cached fix or acquires one from the device within budget.
	// Failures are *errors.LocationError.
	Resolve(ctx context.Context, ownerID string, budget time.Duration) (*entity.Position, error)

	// LastKnown returns the cached fix when it is younger than maxAge.
	LastKnown(ctx context.Context, ownerID string, maxAge time.Duration) (*entity.Position, bool)
}
