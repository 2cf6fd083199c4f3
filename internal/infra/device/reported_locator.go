// Package device adapts the location report sent by the client app into a DeviceLocator.
package device

import (
	"context"
	"strings"
	"sync"

	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
)

// Fix is one location attempt as performed on the device: either a position or an error kind.
type Fix struct {
	Position *entity.Position
	Error    string
}

// Report is what the client knows about its location when the SOS is triggered.
// Fixes are replayed in order, one per attempt; the last one repeats.
type Report struct {
	Permission service.PermissionState
	Fixes      []Fix

	mu   sync.Mutex
	next int
}

type reportKey struct{}

// WithReport attaches a device report to the context of one trigger.
func WithReport(ctx context.Context, report *Report) context.Context {
	return context.WithValue(ctx, reportKey{}, report)
}

func reportFromContext(ctx context.Context) *Report {
	report, _ := ctx.Value(reportKey{}).(*Report)

	return report
}

// contextLocator reads the report carried by the request context.
type contextLocator struct{}

// NewContextLocator creates a DeviceLocator backed by the report stored with WithReport.
// Without a report the permission is unknown and every attempt is unsupported.
func NewContextLocator() service.DeviceLocator {
	return contextLocator{}
}

func (contextLocator) Permission(ctx context.Context) (service.PermissionState, error) {
	report := reportFromContext(ctx)
	if report == nil || report.Permission == "" {
		return service.PermissionUnknown, nil
	}

	return report.Permission, nil
}

func (contextLocator) Locate(ctx context.Context, _ service.FixRequest) (*entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewLocationError(domainerrors.LocationTimeout, err)
	}

	report := reportFromContext(ctx)
	if report == nil {
		return nil, domainerrors.NewLocationError(domainerrors.LocationUnsupported, nil)
	}

	fix, ok := report.take()
	if !ok {
		return nil, domainerrors.NewLocationError(domainerrors.LocationUnavailable, nil)
	}
	if fix.Position != nil {
		position := *fix.Position

		return &position, nil
	}

	return nil, domainerrors.NewLocationError(ParseErrorKind(fix.Error), nil)
}

func (r *Report) take() (Fix, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Fixes) == 0 {
		return Fix{}, false
	}

	idx := min(r.next, len(r.Fixes)-1)
	r.next++

	return r.Fixes[idx], true
}

// ParseErrorKind maps the browser/platform geolocation error names onto location error kinds.
func ParseErrorKind(name string) domainerrors.LocationErrorKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "permission_denied", "denied", "1":
		return domainerrors.LocationPermissionDenied
	case "timeout", "3":
		return domainerrors.LocationTimeout
	case "unsupported", "not_supported":
		return domainerrors.LocationUnsupported
	default:
		return domainerrors.LocationUnavailable
	}
}
