package impl

import (
	"context"
	"log/slog"
	"time"

	"sos/config"
	deliverycontext "sos/internal/delivery/context"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	"sos/internal/errors"
	"sos/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// locationResolver implements the LocationUsecase interface.
type locationResolver struct {
	cfg      *config.LocationConfig
	cache    service.PositionCache
	locator  service.DeviceLocator
	geocoder service.Geocoder
	clock    service.Clock
	sleep    service.Sleeper
	logger   *slog.Logger
}

// LocationResolverParams holds dependencies for the location resolver, injected by Fx.
type LocationResolverParams struct {
	fx.In

	Config   *config.Config
	Cache    service.PositionCache
	Locator  service.DeviceLocator
	Geocoder service.Geocoder
	Clock    service.Clock
	Sleeper  service.Sleeper `optional:"true"`
	Logger   *slog.Logger
}

// NewLocationResolver is the constructor for locationResolver.
func NewLocationResolver(params LocationResolverParams) usecase.LocationUsecase {
	params.Config.ApplyDefaults()

	sleep := params.Sleeper
	if sleep == nil {
		sleep = service.Sleep
	}

	return &locationResolver{
		cfg:      params.Config.Location,
		cache:    params.Cache,
		locator:  params.Locator,
		geocoder: params.Geocoder,
		clock:    params.Clock,
		sleep:    sleep,
		logger:   params.Logger,
	}
}

// Resolve returns a fresh cached fix or runs the permission-aware retry ladder against the device.
func (r *locationResolver) Resolve(ctx context.Context, ownerID string, budget time.Duration) (*entity.Position, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger).With(slog.String("owner_id", ownerID))

	if cached := r.cached(ctx, logger, ownerID, r.cfg.CacheTTL); cached != nil {
		logger.Debug("Using cached position")

		return cached, nil
	}

	if budget <= 0 {
		budget = r.cfg.DefaultBudget
	}
	deadline := r.clock.Now().Add(budget)

	permission, err := r.locator.Permission(ctx)
	if err != nil {
		logger.Debug("Permission state not available", slog.Any("error", err))
		permission = service.PermissionUnknown
	}
	if permission == service.PermissionDenied {
		return nil, domainerrors.NewLocationError(domainerrors.LocationPermissionDenied, errors.New("permission permanently denied"))
	}

	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		remaining := deadline.Sub(r.clock.Now())
		if remaining <= 0 {
			break
		}

		position, err := r.attempt(ctx, attempt, min(r.attemptTimeout(attempt), remaining))
		if err == nil {
			return r.remember(ctx, logger, ownerID, *position), nil
		}

		lastErr = err
		logger.Info("Location attempt failed", slog.Int("attempt", attempt), slog.Any("error", err))

		if ctx.Err() != nil {
			return nil, domainerrors.NewLocationError(domainerrors.LocationTimeout, ctx.Err())
		}
		if domainerrors.IsLocationError(err, domainerrors.LocationUnsupported) {
			return nil, err
		}
		if domainerrors.IsLocationError(err, domainerrors.LocationPermissionDenied) && attempt < r.cfg.MaxAttempts {
			if sleepErr := r.sleep(ctx, r.deniedBackoff(attempt)); sleepErr != nil {
				return nil, domainerrors.NewLocationError(domainerrors.LocationTimeout, sleepErr)
			}
		}
	}

	if lastErr == nil {
		lastErr = domainerrors.NewLocationError(domainerrors.LocationTimeout, errors.New("location budget exhausted"))
	}

	return nil, lastErr
}

// LastKnown returns the cached fix when it is younger than maxAge.
func (r *locationResolver) LastKnown(ctx context.Context, ownerID string, maxAge time.Duration) (*entity.Position, bool) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger).With(slog.String("owner_id", ownerID))
	cached := r.cached(ctx, logger, ownerID, maxAge)

	return cached, cached != nil
}

func (r *locationResolver) cached(ctx context.Context, logger *slog.Logger, ownerID string, maxAge time.Duration) *entity.Position {
	entry, err := r.cache.Get(ctx, ownerID)
	if err != nil {
		logger.Warn("Failed to read position cache", slog.Any("error", err))

		return nil
	}
	if !entry.FreshAt(r.clock.Now(), maxAge) {
		return nil
	}
	position := entry.Position

	return &position
}

// attemptTimeout is base + step*(k-1) for attempt k.
func (r *locationResolver) attemptTimeout(attempt int) time.Duration {
	return r.cfg.BaseTimeout + r.cfg.TimeoutStep*time.Duration(attempt-1)
}

func (r *locationResolver) deniedBackoff(attempt int) time.Duration {
	if len(r.cfg.DeniedBackoffs) == 0 {
		return 0
	}
	if attempt > len(r.cfg.DeniedBackoffs) {
		return r.cfg.DeniedBackoffs[len(r.cfg.DeniedBackoffs)-1]
	}

	return r.cfg.DeniedBackoffs[attempt-1]
}

func (r *locationResolver) attempt(ctx context.Context, attempt int, timeout time.Duration) (*entity.Position, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	position, err := r.locator.Locate(attemptCtx, service.FixRequest{
		HighAccuracy: attempt == 1,
		Timeout:      timeout,
	})
	if err != nil {
		if domainerrors.IsLocationError(err) {
			return nil, err
		}
		if errors.IsTimeout(err) {
			return nil, domainerrors.NewLocationError(domainerrors.LocationTimeout, err)
		}

		return nil, domainerrors.NewLocationError(domainerrors.LocationUnavailable, err)
	}
	if position == nil {
		return nil, domainerrors.NewLocationError(domainerrors.LocationUnavailable, errors.New("device returned no position"))
	}
	if !worldBound.Contains(orb.Point{position.Longitude, position.Latitude}) {
		return nil, domainerrors.NewLocationError(domainerrors.LocationUnavailable,
			errors.Errorf("coordinates out of range: %s", position.Coordinates()))
	}

	return position, nil
}

// remember caches the fix, then best-effort geocodes it and refreshes the entry with the address.
func (r *locationResolver) remember(ctx context.Context, logger *slog.Logger, ownerID string, position entity.Position) *entity.Position {
	capturedAt := r.clock.Now()
	if err := r.cache.Set(ctx, ownerID, entity.PositionCacheEntry{Position: position, CapturedAt: capturedAt}); err != nil {
		logger.Warn("Failed to write position cache", slog.Any("error", err))
	}

	if position.Address != "" {
		return &position
	}

	geocodeCtx, cancel := context.WithTimeout(ctx, r.cfg.GeocodeTimeout)
	defer cancel()

	address, err := r.geocoder.ReverseGeocode(geocodeCtx, position.Latitude, position.Longitude)
	if err != nil {
		logger.Warn("Reverse geocoding failed, continuing without address", slog.Any("error", err))

		return &position
	}
	if address == "" {
		return &position
	}

	position = position.WithAddress(address)
	if err := r.cache.Set(ctx, ownerID, entity.PositionCacheEntry{Position: position, CapturedAt: capturedAt}); err != nil {
		logger.Warn("Failed to write position cache", slog.Any("error", err))
	}

	return &position
}
