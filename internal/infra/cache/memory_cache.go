// Package cache provides PositionCache implementations.
package cache

import (
	"context"
	"sync"
	"time"

	"sos/internal/domain/entity"
	"sos/internal/domain/service"
)

// memoryCache is a process-local PositionCache. Entries never expire on their own;
// freshness is decided by the reader against CapturedAt.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]entity.PositionCacheEntry
}

// NewMemoryCache creates an empty in-memory position cache.
func NewMemoryCache() service.PositionCache {
	return &memoryCache{entries: make(map[string]entity.PositionCacheEntry)}
}

func (c *memoryCache) Get(_ context.Context, scope string) (*entity.PositionCacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[scope]
	if !ok {
		return nil, nil
	}

	return &entry, nil
}

func (c *memoryCache) Set(_ context.Context, scope string, entry entity.PositionCacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[scope] = entry

	return nil
}

// keyTTL keeps stored entries around a little longer than the longest freshness window readers use.
func keyTTL(ttl, fallbackMaxAge time.Duration) time.Duration {
	if fallbackMaxAge > ttl {
		return fallbackMaxAge
	}

	return ttl
}
