package cache

import (
	"context"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
)

// MapCache stores composed maps keyed by variant and selected city
type MapCache interface {
	// Get returns the cached map and whether it was present
	Get(ctx context.Context, key string) (entity.Map, bool, error)
	Set(ctx context.Context, key string, m entity.Map) error
	// Clear drops every cached map and returns how many entries were removed
	Clear(ctx context.Context) (int, error)
	Health(ctx context.Context) model.ComponentHealthStatus
}
