package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RateLimiterOptions configures a fixed-window limiter
type RateLimiterOptions struct {
	// Limit is the number of requests allowed per window, zero disables limiting
	Limit int
	// Window is the window length
	Window time.Duration
	// Name namespaces the counters
	Name string
}

// RateLimiter counts requests per subject in fixed windows shared by every replica
type RateLimiter struct {
	client *Client
	opts   RateLimiterOptions
	now    func() time.Time
}

// Decision is the outcome of Allow
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// NewRateLimiter creates a limiter; the window defaults to one minute
func NewRateLimiter(client *Client, opts RateLimiterOptions) (*RateLimiter, error) {
	if opts.Limit < 0 {
		return nil, fmt.Errorf("invalid limit: %d, must be non-negative", opts.Limit)
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Name == "" {
		opts.Name = "rate"
	}
	return &RateLimiter{client: client, opts: opts, now: time.Now}, nil
}

// Allow records one request for subject and reports whether it fits in the current window
func (rl *RateLimiter) Allow(ctx context.Context, subject string) (Decision, error) {
	if rl.opts.Limit == 0 {
		return Decision{Allowed: true}, nil
	}

	now := rl.now()
	window := now.Truncate(rl.opts.Window)
	key := rl.client.Key(rl.opts.Name, subject, strconv.FormatInt(window.Unix(), 10))

	count, err := rl.client.IncrWithExpire(ctx, key, rl.opts.Window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limiter %s: %w", rl.opts.Name, err)
	}

	remaining := rl.opts.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= int64(rl.opts.Limit),
		Remaining: remaining,
		ResetIn:   window.Add(rl.opts.Window).Sub(now),
	}, nil
}

// Limit returns the configured per-window limit
func (rl *RateLimiter) Limit() int {
	return rl.opts.Limit
}
