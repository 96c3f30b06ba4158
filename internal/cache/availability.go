package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hourbook/hourbook/internal/config"
	"github.com/hourbook/hourbook/internal/domain/schedule"
)

// Availability results age quickly ("past hour" flips as the clock moves), so
// the TTL stays short. Bookings invalidate the day eagerly anyway.
const availabilityTTL = time.Minute

func NewClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return client
}

type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func dayKey(providerID string, year, month, day int) string {
	return fmt.Sprintf("availability:%s:%04d-%02d-%02d", providerID, year, month, day)
}

func (c *AvailabilityCache) GetDay(
	ctx context.Context,
	providerID string,
	year, month, day int,
) ([]schedule.HourSlot, bool) {

	raw, err := c.client.Get(ctx, dayKey(providerID, year, month, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.HourSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) SetDay(
	ctx context.Context,
	providerID string,
	year, month, day int,
	slots []schedule.HourSlot,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	// best effort: a cache write failure never surfaces
	c.client.Set(ctx, dayKey(providerID, year, month, day), raw, availabilityTTL)
}

func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	providerID string,
	year, month, day int,
) {
	c.client.Del(ctx, dayKey(providerID, year, month, day))
}
