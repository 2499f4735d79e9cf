package cache

import (
	"context"
	"errors"
	"time"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
	"solar-map/pkg/redis"
)

const mapCacheName = "map"

type redisMapCache struct {
	client *redis.Client
	cache  *redis.Cache
}

// NewRedisMapCache stores maps as JSON under <prefix>:map:<key>. A zero ttl uses the client default.
func NewRedisMapCache(client *redis.Client, ttl time.Duration) MapCache {
	return &redisMapCache{
		client: client,
		cache:  redis.NewCache(client, redis.NewCacheOptions(mapCacheName).WithTTL(ttl)),
	}
}

func (c *redisMapCache) Get(ctx context.Context, key string) (entity.Map, bool, error) {
	var m entity.Map
	if err := c.cache.Get(ctx, key, &m); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return entity.Map{}, false, nil
		}
		return entity.Map{}, false, err
	}
	return m, true, nil
}

func (c *redisMapCache) Set(ctx context.Context, key string, m entity.Map) error {
	return c.cache.Set(ctx, key, m)
}

func (c *redisMapCache) Clear(ctx context.Context) (int, error) {
	return c.cache.Clear(ctx)
}

func (c *redisMapCache) Health(ctx context.Context) model.ComponentHealthStatus {
	report := c.client.HealthCheck(ctx)
	status := model.StatusUp
	if !report.Healthy {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: report.Details}
}
