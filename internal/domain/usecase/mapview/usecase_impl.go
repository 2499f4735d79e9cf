package mapview

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/gateway/cache"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/model"
	"solar-map/internal/domain/service/layer"
	"solar-map/internal/domain/service/search"
	"solar-map/internal/domain/usecase/city"
	"solar-map/pkg/log"
	"solar-map/pkg/metrics"
	"solar-map/pkg/msg"
)

// Cache keys are <variant>:national or <variant>:city:<name>, so no city name can collide
// with the national view.
const (
	nationalSegment = "national"
	citySegment     = "city"
)

type mapViewUseCase struct {
	registry registry.CityRegistry
	composer *layer.Composer
	cache    cache.MapCache
	index    []string
}

func NewMapViewUseCase(cities registry.CityRegistry, composer *layer.Composer, mapCache cache.MapCache) UseCase {
	if mapCache == nil {
		mapCache = cache.NewNoopMapCache()
	}

	all := cities.All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}

	return &mapViewUseCase{
		registry: cities,
		composer: composer,
		cache:    mapCache,
		index:    city.SortNames(names),
	}
}

func (uc *mapViewUseCase) Render(ctx context.Context, query string) (model.MapResponse, error) {
	query = strings.TrimSpace(query)
	response := model.MapResponse{Success: true, Query: query}

	selected := ""
	if query != "" {
		result, err := search.Resolve(query, uc.registry)
		if err != nil {
			return model.MapResponse{}, err
		}
		metrics.SearchResolutions.WithLabelValues(string(result.Kind)).Inc()

		response.Match = string(result.Kind)
		if result.Found() {
			selected = result.City.Name
		} else {
			response.Suggestions = result.Suggestions
		}
	}

	m, err := uc.mapFor(ctx, selected)
	if err != nil {
		return model.MapResponse{}, err
	}

	response.Selected = m.Selected
	response.View = m.View
	response.Layers = m.Layers
	response.Stats = m.Stats
	response.Cities = append([]string(nil), uc.index...)
	response.Count = len(uc.index)
	return response, nil
}

// mapFor serves from the cache and falls back to composing. Cache errors are logged, never
// returned.
func (uc *mapViewUseCase) mapFor(ctx context.Context, selected string) (entity.Map, error) {
	key := uc.cacheKey(selected)

	cached, ok, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.MapCacheLookups.WithLabelValues("error").Inc()
		log.Warn(msg.GetMessage("map.cache-get-fail", key, err), zap.String("key", key), zap.Error(err))
	case ok:
		metrics.MapCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.MapCacheLookups.WithLabelValues("miss").Inc()
	}

	m, err := uc.composer.Compose(selected)
	if err != nil {
		return entity.Map{}, err
	}
	metrics.MapCompositions.Inc()

	if err := uc.cache.Set(ctx, key, m); err != nil {
		log.Warn(msg.GetMessage("map.cache-set-fail", key, err), zap.String("key", key), zap.Error(err))
	}
	return m, nil
}

func (uc *mapViewUseCase) cacheKey(selected string) string {
	variant := "plain"
	if uc.composer.Solar() {
		variant = "solar"
	}
	if selected == "" {
		return variant + ":" + nationalSegment
	}
	return variant + ":" + citySegment + ":" + selected
}

func (uc *mapViewUseCase) WarmUp(ctx context.Context, runID string) (int, error) {
	removed, err := uc.cache.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear map cache: %w", err)
	}
	log.Debug(msg.GetMessage("map.cache-cleared", removed), zap.String("request_id", runID))

	targets := append([]string{""}, uc.index...)
	stored := 0
	for _, name := range targets {
		if err := ctx.Err(); err != nil {
			return stored, err
		}

		m, err := uc.composer.Compose(name)
		if err != nil {
			return stored, err
		}
		metrics.MapCompositions.Inc()

		if err := uc.cache.Set(ctx, uc.cacheKey(name), m); err != nil {
			return stored, fmt.Errorf("store map %q: %w", name, err)
		}
		stored++
	}
	return stored, nil
}
