package sms

import (
	"context"
	"log/slog"

	"sos/config"
	"sos/internal/domain/constants"
	"sos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the SMS providers, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// NewProviders builds the ordered provider chain from notification.providers.
func NewProviders(params Params) ([]service.SMSProvider, error) {
	names := params.Config.Notification.Providers
	if len(names) == 0 {
		names = []string{constants.SMSProviderMock}
	}

	providers := make([]service.SMSProvider, 0, len(names))
	for _, name := range names {
		switch name {
		case constants.SMSProviderSNS:
			provider, err := NewSNSProvider(params.Ctx, params.Config.SNS, params.Logger)
			if err != nil {
				return nil, err
			}
			providers = append(providers, provider)
		case constants.SMSProviderMock:
			providers = append(providers, NewMockProvider(params.Config.Notification.MockLatency, params.Clock, params.Logger))
		default:
			return nil, errors.Errorf("unknown sms provider: %s", name)
		}
	}

	params.Logger.Info("SMS providers configured", slog.Any("providers", names))

	return providers, nil
}

// Module provides the SMS FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProviders),
)
