package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"solar-map/configs"
	"solar-map/docs"
	"solar-map/internal/application/controller"
	"solar-map/internal/application/middleware"
	"solar-map/internal/application/schedule"
	"solar-map/internal/domain/gateway/cache"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/service/layer"
	"solar-map/internal/domain/usecase/city"
	"solar-map/internal/domain/usecase/health"
	"solar-map/internal/domain/usecase/mapview"
	"solar-map/pkg/log"
	"solar-map/pkg/msg"
	"solar-map/pkg/redis"
	"solar-map/pkg/resource"
)

// runServe starts the HTTP API and blocks until SIGINT or SIGTERM
func runServe(env *configs.EnvConfig) error {
	log.Info(msg.GetMessage("app.start"), zap.String("application", env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init registry
	cityRegistry, err := loadRegistry()
	if err != nil {
		return err
	}

	composer := layer.NewComposer(cityRegistry, registry.SolarZones(), layer.Options{
		Solar:           resource.GetBool("app.map.solar-layers"),
		RayCount:        resource.GetInt("app.map.ray-count"),
		RayLength:       resource.GetFloat64("app.map.ray-length"),
		HighlightRadius: resource.GetFloat64("app.map.highlight-radius"),
	})

	// Init Redis backed gateways
	mapCache := cache.NewNoopMapCache()
	var limiter middleware.Limiter
	redisClient, err := newRedisClient()
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		mapCache = cache.NewRedisMapCache(redisClient, resource.GetDuration("app.cache.ttl"))

		rl, err := redis.NewRateLimiter(redisClient, redis.RateLimiterOptions{
			Limit: resource.GetInt("app.rate-limit.per-minute"),
			Name:  "rate",
		})
		if err != nil {
			return err
		}
		limiter = rl
	} else {
		log.Info(msg.GetMessage("app.redis-disabled"))
	}

	// Init UseCase
	cityUseCase := city.NewCityUseCase(cityRegistry)
	mapViewUseCase := mapview.NewMapViewUseCase(cityRegistry, composer, mapCache)
	healthUseCase := health.NewHealthUseCase(cityRegistry, mapCache)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupMetrics(e)
	middleware.SetupRateLimit(e, limiter)

	contextPath := env.ContextPath
	if contextPath == "" {
		contextPath = resource.GetString("app.server.context-path")
	}
	api := e.Group(contextPath)
	docs.SwaggerInfo.BasePath = contextPath + "/"
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Controller
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewCityController(api, cityUseCase).InitCityRoutes()
	controller.NewMapController(api, mapViewUseCase).InitMapRoutes()

	// Init Schedule
	var warmUp *schedule.CacheWarmUpScheduler
	if redisClient != nil {
		warmUp = schedule.NewCacheWarmUpScheduler(mapViewUseCase, resource.GetString("app.cache.warmup.cron"), 0)
		if err := warmUp.InitCacheWarmUpTasks(ctx); err != nil {
			warmUp = nil
		}
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	serverErr := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			log.Error("server stopped unexpectedly", zap.Error(err))
			return err
		}
	}
	log.Info(msg.GetMessage("app.stopping"))

	if warmUp != nil {
		warmUp.Stop()
	}

	timeout := resource.GetDuration("app.server.shutdown-timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	log.Info(msg.GetMessage("app.stopped"))
	return nil
}

func loadRegistry() (registry.CityRegistry, error) {
	cityRegistry, err := registry.NewRegistryFromSource(resource.GetString("app.registry.file"))
	if err != nil {
		log.Error(msg.GetMessage("app.registry-fail", err), zap.Error(err))
		return nil, err
	}
	log.Info(msg.GetMessage("app.registry-loaded", cityRegistry.Len()))
	return cityRegistry, nil
}

// newRedisClient returns nil when the cache is disabled
func newRedisClient() (*redis.Client, error) {
	if !resource.GetBool("app.cache.enabled") {
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithKeyPrefix(resource.GetStringOrDefault("app.redis.key-prefix", "solar-map")).
		WithDefaultCacheTTL(resource.GetDuration("app.cache.ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Error(msg.GetMessage("app.redis-fail", err), zap.Error(err))
		return nil, err
	}
	return client, nil
}
