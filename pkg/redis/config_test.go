package redis

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"defaults", NewRedisConfig(), false},
		{"empty host", NewRedisConfig().WithHost(""), true},
		{"bad port", NewRedisConfig().WithPort(70000), true},
		{"bad database", NewRedisConfig().WithDatabase(16), true},
		{"negative ttl", NewRedisConfig().WithDefaultCacheTTL(-time.Second), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	if _, err := NewClient(NewRedisConfig().WithPort(0)); err == nil {
		t.Error("expected error")
	}
}

func TestKey(t *testing.T) {
	c, err := NewClient(NewRedisConfig().WithKeyPrefix("solar-map"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if got := c.Key("map", "Сочи"); got != "solar-map:map:Сочи" {
		t.Errorf("Key = %q", got)
	}

	c.GetConfig().WithKeyPrefix("")
	if got := c.Key("map", "x"); got != "map:x" {
		t.Errorf("Key without prefix = %q", got)
	}
}

func TestCacheTTLFallsBackToClientDefault(t *testing.T) {
	c, _ := NewClient(NewRedisConfig().WithDefaultCacheTTL(42 * time.Second))
	defer c.Close()

	if got := NewCache(c, NewCacheOptions("map")).ttl(); got != 42*time.Second {
		t.Errorf("ttl = %v", got)
	}
	if got := NewCache(c, NewCacheOptions("map").WithTTL(time.Minute)).ttl(); got != time.Minute {
		t.Errorf("ttl = %v", got)
	}
}

func TestRateLimiterDisabledNeedsNoRedis(t *testing.T) {
	c, _ := NewClient(NewRedisConfig().WithPort(1))
	defer c.Close()

	rl, err := NewRateLimiter(c, RateLimiterOptions{Limit: 0})
	if err != nil {
		t.Fatal(err)
	}
	d, err := rl.Allow(t.Context(), "127.0.0.1")
	if err != nil || !d.Allowed {
		t.Errorf("disabled limiter = %+v, %v", d, err)
	}

	if _, err := NewRateLimiter(c, RateLimiterOptions{Limit: -1}); err == nil {
		t.Error("expected error for negative limit")
	}
}
