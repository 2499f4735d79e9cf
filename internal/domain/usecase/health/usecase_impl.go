package health

import (
	"context"
	"strconv"

	"solar-map/internal/domain/gateway/cache"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/model"
)

type healthUseCase struct {
	registry registry.CityRegistry
	cache    cache.MapCache
}

func NewHealthUseCase(cities registry.CityRegistry, mapCache cache.MapCache) UseCase {
	return &healthUseCase{
		registry: cities,
		cache:    mapCache,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	registryHealth := useCase.registryHealth()
	cacheHealth := useCase.cache.Health(ctx)

	overallStatus := model.StatusUp
	if registryHealth.Status != model.StatusUp || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Registry: registryHealth,
		Cache:    cacheHealth,
	}
}

func (useCase *healthUseCase) registryHealth() model.ComponentHealthStatus {
	n := useCase.registry.Len()
	status := model.StatusUp
	if n == 0 {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: map[string]string{"cities": strconv.Itoa(n)},
	}
}
