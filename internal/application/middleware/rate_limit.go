package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"solar-map/internal/domain/model"
	"solar-map/pkg/log"
	"solar-map/pkg/metrics"
	"solar-map/pkg/msg"
	"solar-map/pkg/redis"
)

// Limiter decides whether a subject may issue another request
type Limiter interface {
	Allow(ctx context.Context, subject string) (redis.Decision, error)
	Limit() int
}

// SetupRateLimit limits requests per client IP. A nil limiter leaves the chain untouched.
// Limiter failures let the request through.
func SetupRateLimit(e *echo.Echo, limiter Limiter) {
	if limiter == nil {
		return
	}
	e.Use(RateLimit(limiter))
}

func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipInfraPaths(c) {
				return next(c)
			}

			decision, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn(msg.GetMessage("api.rate-limit-fail", err), zap.Error(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				metrics.RateLimited.Inc()
				retryAfter := int(math.Ceil(decision.ResetIn.Seconds()))
				header.Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, model.NewErrorResponse(msg.GetMessage("api.rate-limited", retryAfter)))
			}
			return next(c)
		}
	}
}
