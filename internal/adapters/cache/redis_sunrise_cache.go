package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"location-sunrise-service/internal/domain"
)

// Entries expire well before the next day's times could differ.
const sunriseTTL = time.Hour

// RedisSunriseCache caches sunrise/sunset lookups as JSON values in Redis.
type RedisSunriseCache struct {
	Client *redis.Client
}

func NewRedisSunriseCache(client *redis.Client) *RedisSunriseCache {
	return &RedisSunriseCache{Client: client}
}

// Get fetches a cached sunrise/sunset entry by key.
func (c *RedisSunriseCache) Get(ctx context.Context, key string) (domain.SunriseSunset, bool, error) {
	if c.Client == nil {
		return domain.SunriseSunset{}, false, errors.New("sunrise cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.SunriseSunset{}, false, nil
	}
	if err != nil {
		return domain.SunriseSunset{}, false, fmt.Errorf("get sunrise cache key=%q: %w", key, err)
	}

	var v domain.SunriseSunset
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return domain.SunriseSunset{}, false, fmt.Errorf("decode sunrise cache key=%q: %w", key, err)
	}

	return v, true, nil
}

// Put stores a sunrise/sunset entry with a TTL.
func (c *RedisSunriseCache) Put(ctx context.Context, key string, v domain.SunriseSunset) error {
	if c.Client == nil {
		return errors.New("sunrise cache: client is nil")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode sunrise cache key=%q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, raw, sunriseTTL).Err(); err != nil {
		return fmt.Errorf("set sunrise cache key=%q: %w", key, err)
	}

	return nil
}
