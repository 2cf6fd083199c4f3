package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sos/internal/domain/entity"
	"sos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCache stores the last resolved position per scope as a JSON string key.
type redisCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *slog.Logger
}

// NewRedisCache creates a Redis-backed PositionCache. Keys expire after the larger of ttl and fallbackMaxAge.
func NewRedisCache(client *redis.Client, keyPrefix string, ttl, fallbackMaxAge time.Duration, logger *slog.Logger) service.PositionCache {
	return &redisCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       keyTTL(ttl, fallbackMaxAge),
		logger:    logger,
	}
}

func (c *redisCache) key(scope string) string {
	return c.keyPrefix + scope
}

func (c *redisCache) Get(ctx context.Context, scope string) (*entity.PositionCacheEntry, error) {
	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached position")
	}

	var entry entity.PositionCacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warn("Discarding unreadable cached position",
			slog.String("scope", scope),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return &entry, nil
}

func (c *redisCache) Set(ctx context.Context, scope string, entry entity.PositionCacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, c.key(scope), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cached position")
	}

	return nil
}
