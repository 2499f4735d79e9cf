package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for cached values, zero means the client default
	TTL time.Duration
	// CacheName namespaces keys as <prefix>:<CacheName>:<key>
	CacheName string
	// Serializer and Deserializer default to JSON
	Serializer   func(any) ([]byte, error)
	Deserializer func([]byte, any) error
}

// NewCacheOptions creates cache options with JSON serialization
func NewCacheOptions(cacheName string) *CacheOptions {
	return &CacheOptions{
		CacheName:    cacheName,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// Cache stores serialized values under a named namespace
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions("default")
	}
	if opts.Serializer == nil {
		opts.Serializer = json.Marshal
	}
	if opts.Deserializer == nil {
		opts.Deserializer = json.Unmarshal
	}
	return &Cache{client: client, opts: opts}
}

func (c *Cache) ttl() time.Duration {
	if c.opts.TTL > 0 {
		return c.opts.TTL
	}
	return c.client.config.DefaultCacheTTL
}

func (c *Cache) buildKey(key string) string {
	return c.client.Key(c.opts.CacheName, key)
}

// Get loads key into dest. It returns ErrNotFound on a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.GetBytes(ctx, c.buildKey(key))
	if err != nil {
		return err
	}
	if err := c.opts.Deserializer(data, dest); err != nil {
		return fmt.Errorf("failed to deserialize %s: %w", key, err)
	}
	return nil
}

// Set stores value under key with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildKey(key), data, c.ttl())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildKey(key))
}

// Clear removes every key of this cache and returns how many were deleted
func (c *Cache) Clear(ctx context.Context) (int, error) {
	return c.client.DeleteByPattern(ctx, c.buildKey("*"), 100)
}
