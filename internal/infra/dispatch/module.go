package dispatch

import (
	"log/slog"

	"sos/config"
	"sos/internal/domain/constants"
	"sos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the dispatch provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// NewDispatchService creates the DispatchService selected by dispatch.provider.
func NewDispatchService(params Params) (service.DispatchService, error) {
	cfg := params.Config.Dispatch

	switch cfg.Provider {
	case "", constants.DispatchProviderMock:
		params.Logger.Info("Using mock emergency dispatch", slog.Duration("latency", cfg.MockLatency))

		return NewMockDispatcher(cfg.MockLatency, params.Clock, params.Logger), nil
	case constants.DispatchProviderHTTP:
		if cfg.Endpoint == "" && len(cfg.Regions) == 0 {
			return nil, errors.New("endpoint or regions are required for http dispatch")
		}
		params.Logger.Info("Using HTTP emergency dispatch", slog.String("endpoint", cfg.Endpoint))

		return NewHTTPDispatcher(cfg.Endpoint, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown dispatch provider: %s", cfg.Provider)
	}
}

// Module provides the dispatch FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDispatchService),
)
