package service

import (
	"context"

	"sos/internal/domain/entity"
)

// PositionCache keeps the most recent successfully resolved position per scope.
// Writes are last-write-wins; there is no compare-and-set.
type PositionCache interface {
	// Get returns the entry for scope, or nil when nothing was cached.
	Get(ctx context.Context, scope string) (*entity.PositionCacheEntry, error)

	// Set overwrites the entry for scope.
	Set(ctx context.Context, scope string, entry entity.PositionCacheEntry) error
}
