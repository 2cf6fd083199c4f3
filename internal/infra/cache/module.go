package cache

import (
	"context"
	"log/slog"

	"sos/config"
	"sos/internal/domain/constants"
	"sos/internal/domain/lifecycle"
	"sos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "sos:position:"

// Params holds dependencies for the position cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPositionCache creates the PositionCache selected by location.cacheProvider.
func NewPositionCache(params Params) (service.PositionCache, error) {
	locCfg := params.Config.Location
	logger := params.Logger

	switch locCfg.CacheProvider {
	case "", constants.CacheProviderMemory:
		logger.Info("Using in-memory position cache")

		return NewMemoryCache(), nil

	case constants.CacheProviderRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.URL == "" {
			return nil, errors.New("redis url is required for redis cache provider")
		}

		opt, err := redis.ParseURL(redisCfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse redis url")
		}
		client := redis.NewClient(opt)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		prefix := redisCfg.KeyPrefix
		if prefix == "" {
			prefix = defaultKeyPrefix
		}
		logger.Info("Using Redis position cache", slog.String("key_prefix", prefix))

		return NewRedisCache(client, prefix, locCfg.CacheTTL, locCfg.FallbackMaxAge, logger), nil

	default:
		return nil, errors.Errorf("unknown position cache provider: %s", locCfg.CacheProvider)
	}
}

// Module provides the position cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPositionCache),
)
