package cache

import (
	"context"
	"testing"
	"time"

	"sos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetMissingScope(t *testing.T) {
	c := NewMemoryCache()

	entry, err := c.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestMemoryCache_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, c.Set(ctx, "user-1", entity.PositionCacheEntry{
		Position:   entity.Position{Latitude: 1, Longitude: 2},
		CapturedAt: now,
	}))
	require.NoError(t, c.Set(ctx, "user-1", entity.PositionCacheEntry{
		Position:   entity.Position{Latitude: 3, Longitude: 4},
		CapturedAt: now.Add(time.Minute),
	}))

	entry, err := c.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 3.0, entry.Position.Latitude)
	assert.Equal(t, now.Add(time.Minute), entry.CapturedAt)

	other, err := c.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestKeyTTL(t *testing.T) {
	assert.Equal(t, 30*time.Minute, keyTTL(5*time.Minute, 30*time.Minute))
	assert.Equal(t, 5*time.Minute, keyTTL(5*time.Minute, 0))
}
