// Package dispatch contains emergency-dispatch providers.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sos/internal/domain/constants"
	"sos/internal/domain/service"
)

// mockDispatcher simulates an emergency-dispatch service answering after a fixed latency.
type mockDispatcher struct {
	latency time.Duration
	clock   service.Clock
	sleep   service.Sleeper
	logger  *slog.Logger
}

// NewMockDispatcher creates a dispatcher that returns "ES-<unix ms>" references.
func NewMockDispatcher(latency time.Duration, clock service.Clock, logger *slog.Logger) service.DispatchService {
	return &mockDispatcher{
		latency: latency,
		clock:   clock,
		sleep:   service.Sleep,
		logger:  logger,
	}
}

func (d *mockDispatcher) Name() string {
	return constants.DispatchProviderMock
}

func (d *mockDispatcher) Dispatch(ctx context.Context, req *service.DispatchRequest) (string, error) {
	d.logger.Info("[MockDispatch] Emergency services would be notified",
		slog.String("caller", req.Caller.DisplayName),
		slog.String("location", req.Position.LocationText()),
		slog.String("region", req.Region),
	)

	if err := d.sleep(ctx, d.latency); err != nil {
		return "", err
	}

	return fmt.Sprintf("ES-%d", d.clock.Now().UnixMilli()), nil
}
