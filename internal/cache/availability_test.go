package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourbook/hourbook/internal/domain/schedule"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAvailabilityCache(client), mr
}

func TestAvailabilityCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	slots := []schedule.HourSlot{
		{Hour: 9, Available: true},
		{Hour: 10, Available: false},
	}

	_, ok := c.GetDay(ctx, "p1", 2024, 5, 10)
	assert.False(t, ok, "empty cache should miss")

	c.SetDay(ctx, "p1", 2024, 5, 10, slots)

	got, ok := c.GetDay(ctx, "p1", 2024, 5, 10)
	require.True(t, ok)
	assert.Equal(t, slots, got)

	// other days and providers stay independent
	_, ok = c.GetDay(ctx, "p1", 2024, 5, 11)
	assert.False(t, ok)
	_, ok = c.GetDay(ctx, "p2", 2024, 5, 10)
	assert.False(t, ok)
}

func TestAvailabilityCache_InvalidateDay(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetDay(ctx, "p1", 2024, 5, 10, []schedule.HourSlot{{Hour: 8, Available: true}})
	c.InvalidateDay(ctx, "p1", 2024, 5, 10)

	_, ok := c.GetDay(ctx, "p1", 2024, 5, 10)
	assert.False(t, ok, "invalidated day should miss")
}

func TestAvailabilityCache_Expires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetDay(ctx, "p1", 2024, 5, 10, []schedule.HourSlot{{Hour: 8, Available: true}})

	mr.FastForward(availabilityTTL * 2)

	_, ok := c.GetDay(ctx, "p1", 2024, 5, 10)
	assert.False(t, ok, "entry should expire after TTL")
}
