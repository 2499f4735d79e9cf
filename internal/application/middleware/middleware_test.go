package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"solar-map/pkg/redis"
)

type fakeLimiter struct {
	limit int
	seen  map[string]int
	err   error
}

func (f *fakeLimiter) Allow(_ context.Context, subject string) (redis.Decision, error) {
	if f.err != nil {
		return redis.Decision{}, f.err
	}
	f.seen[subject]++
	n := f.seen[subject]
	return redis.Decision{Allowed: n <= f.limit, Remaining: max(f.limit-n, 0), ResetIn: 30 * time.Second}, nil
}

func (f *fakeLimiter) Limit() int { return f.limit }

func newEcho(limiter Limiter) *echo.Echo {
	e := echo.New()
	SetupRequestID(e)
	SetupMetrics(e)
	SetupRateLimit(e, limiter)
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/api/cities", ok)
	e.GET("/health", ok)
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	limiter := &fakeLimiter{limit: 2, seen: map[string]int{}}
	e := newEcho(limiter)

	for i := 0; i < 2; i++ {
		if rec := serve(e, "/api/cities"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec := serve(e, "/api/cities")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "30" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("headers = %v", rec.Header())
	}

	if rec := serve(e, "/health"); rec.Code != http.StatusOK {
		t.Errorf("health throttled: %d", rec.Code)
	}
	if limiter.seen["10.0.0.1"] != 3 {
		t.Errorf("limiter saw %d requests", limiter.seen["10.0.0.1"])
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	e := newEcho(&fakeLimiter{limit: 1, err: errors.New("redis down")})
	for i := 0; i < 3; i++ {
		if rec := serve(e, "/api/cities"); rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}
}

func TestRequestIDGenerated(t *testing.T) {
	e := newEcho(nil)

	rec := serve(e, "/api/cities")
	if id := rec.Header().Get(echo.HeaderXRequestID); len(id) != 36 {
		t.Errorf("request id = %q", id)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	req.Header.Set(echo.HeaderXRequestID, "caller-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if id := rec.Header().Get(echo.HeaderXRequestID); id != "caller-id" {
		t.Errorf("request id = %q, want caller-id", id)
	}
}

func TestMetricsMiddlewareHandlesErrors(t *testing.T) {
	e := newEcho(nil)
	if rec := serve(e, "/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}
