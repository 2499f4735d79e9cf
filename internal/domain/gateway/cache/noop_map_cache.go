package cache

import (
	"context"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
)

type noopMapCache struct{}

// NewNoopMapCache is used when caching is disabled; every lookup misses.
func NewNoopMapCache() MapCache {
	return noopMapCache{}
}

func (noopMapCache) Get(context.Context, string) (entity.Map, bool, error) {
	return entity.Map{}, false, nil
}

func (noopMapCache) Set(context.Context, string, entity.Map) error { return nil }

func (noopMapCache) Clear(context.Context) (int, error) { return 0, nil }

func (noopMapCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"reason": "cache disabled"},
	}
}
