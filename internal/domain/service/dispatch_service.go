package service

import (
	"context"
	"time"

	"sos/internal/domain/entity"
)

// DispatchRequest is the payload sent to an emergency-dispatch provider.
type DispatchRequest struct {
	EmergencyType string
	Priority      string
	Source        string
	Language      string
	Region        string
	Endpoint      string // Region-specific endpoint override, empty for the provider default.
	Position      entity.Position
	Caller        entity.Caller
	Timestamp     time.Time
}

// DispatchService notifies a third-party emergency-response service.
type DispatchService interface {
	Name() string

	// Dispatch returns the dispatch reference on success.
	Dispatch(ctx context.Context, req *DispatchRequest) (dispatchID string, err error)
}
