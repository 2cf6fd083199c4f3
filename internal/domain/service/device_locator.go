package service

import (
	"context"
	"time"

	"sos/internal/domain/entity"
)

// PermissionState is the device's location permission as reported by the platform.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionPrompt  PermissionState = "prompt"
	PermissionDenied  PermissionState = "denied"
	// PermissionUnknown means the platform does not expose a permission query.
	PermissionUnknown PermissionState = "unknown"
)

// FixRequest holds the parameters of a single device location attempt.
type FixRequest struct {
	HighAccuracy bool
	Timeout      time.Duration
}

// DeviceLocator acquires a position fix from the user's device.
// Locate must return a *errors.LocationError on failure.
type DeviceLocator interface {
	// Permission returns the current permission state; PermissionDenied means permanently denied.
	Permission(ctx context.Context) (PermissionState, error)

	// Locate performs one location attempt.
	Locate(ctx context.Context, req FixRequest) (*entity.Position, error)
}
