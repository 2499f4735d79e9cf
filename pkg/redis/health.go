package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthReport is the outcome of a connectivity check
type HealthReport struct {
	Healthy bool
	Details map[string]string
}

// HealthCheck pings Redis and round-trips a probe key
func (c *Client) HealthCheck(ctx context.Context) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"address":  c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.probe(ctx); err != nil {
		details["error"] = err.Error()
		return HealthReport{Healthy: false, Details: details}
	}

	stats := c.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)
	return HealthReport{Healthy: true, Details: details}
}

func (c *Client) probe(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	key := c.Key("health")
	if err := c.Set(ctx, key, "ok", time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}
	value, err := c.GetBytes(ctx, key)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if string(value) != "ok" {
		return fmt.Errorf("value mismatch: got %q", value)
	}
	return c.Delete(ctx, key)
}
