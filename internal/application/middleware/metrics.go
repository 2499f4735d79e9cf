package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"solar-map/pkg/metrics"
)

// SetupMetrics records request counts and latency per route template, so /api/city/:name
// stays a single series whatever the city.
func SetupMetrics(e *echo.Echo) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.HTTPRequestLatency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Response().Status)).Inc()
			return nil
		}
	})
}
