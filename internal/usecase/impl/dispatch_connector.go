package impl

import (
	"context"
	"log/slog"
	"math"

	"sos/config"
	deliverycontext "sos/internal/delivery/context"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	"sos/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

// dispatchConnector implements the DispatchUsecase interface.
type dispatchConnector struct {
	cfg     *config.DispatchConfig
	service service.DispatchService
	clock   service.Clock
	logger  *slog.Logger
}

// DispatchConnectorParams holds dependencies for the dispatch connector, injected by Fx.
type DispatchConnectorParams struct {
	fx.In

	Config  *config.Config
	Service service.DispatchService
	Clock   service.Clock
	Logger  *slog.Logger
}

// NewDispatchConnector is the constructor for dispatchConnector.
func NewDispatchConnector(params DispatchConnectorParams) usecase.DispatchUsecase {
	params.Config.ApplyDefaults()

	return &dispatchConnector{
		cfg:     params.Config.Dispatch,
		service: params.Service,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

// Notify makes a single dispatch call. Failures are returned in the result, never retried.
func (d *dispatchConnector) Notify(ctx context.Context, position entity.Position, caller entity.Caller) *entity.DispatchResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	req := &service.DispatchRequest{
		EmergencyType: d.cfg.EmergencyType,
		Priority:      d.cfg.Priority,
		Source:        d.cfg.Source,
		Language:      d.cfg.Language,
		Position:      position,
		Caller:        caller,
		Timestamp:     d.clock.Now(),
	}
	if region, ok := nearestRegion(d.cfg.Regions, position); ok {
		req.Region = region.Name
		req.Endpoint = region.Endpoint
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	dispatchID, err := d.service.Dispatch(dispatchCtx, req)
	if err != nil {
		dispatchErr := domainerrors.NewDispatchError(d.service.Name(), err)
		logger.Error("Emergency dispatch failed",
			slog.String("region", req.Region),
			slog.Any("error", dispatchErr),
		)

		return &entity.DispatchResult{Success: false, Error: dispatchErr.Error(), Region: req.Region}
	}

	logger.Info("Emergency services notified",
		slog.String("provider", d.service.Name()),
		slog.String("dispatch_id", dispatchID),
		slog.String("region", req.Region),
	)

	return &entity.DispatchResult{Success: true, DispatchID: dispatchID, Region: req.Region}
}

// nearestRegion picks the configured region with the shortest great-circle distance to position.
func nearestRegion(regions []config.DispatchRegion, position entity.Position) (config.DispatchRegion, bool) {
	if len(regions) == 0 {
		return config.DispatchRegion{}, false
	}

	origin := orb.Point{position.Longitude, position.Latitude}
	best := -1
	bestDistance := math.Inf(1)
	for idx, region := range regions {
		distance := geo.Distance(origin, orb.Point{region.Longitude, region.Latitude})
		if distance < bestDistance {
			best = idx
			bestDistance = distance
		}
	}

	return regions[best], true
}
