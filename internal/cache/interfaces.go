package cache

import (
	"context"
	"errors"
	"time"
)

// Cache defines the generic cache interface for all cache implementations
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching the given pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Close closes the cache connection
	Close() error
}

// CacheType identifies a cache backend
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// IsValid reports whether the cache type is a known backend
func (t CacheType) IsValid() bool {
	return t == CacheTypeMemory || t == CacheTypeRedis
}

// CacheConfig holds configuration for cache instances
type CacheConfig struct {
	// Enabled indicates if caching is enabled
	Enabled bool `json:"enabled"`

	// TTL is the default time-to-live for cache entries
	TTL time.Duration `json:"ttl"`

	// Prefix is added to all cache keys
	Prefix string `json:"prefix"`

	// Backend specifies the cache backend (memory, redis)
	Backend CacheType `json:"backend"`

	// CleanupInterval for expired item cleanup (memory backend)
	CleanupInterval time.Duration `json:"cleanupInterval"`

	// Redis configuration
	Redis RedisConfig `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	Database int    `json:"database"`
	PoolSize int    `json:"poolSize"`
}

// DefaultCacheConfig returns a sensible default configuration
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled:         true,
		TTL:             time.Hour,
		Backend:         CacheTypeMemory,
		CleanupInterval: 5 * time.Minute,
		Redis: RedisConfig{
			Address:  "localhost:6379",
			Database: 0,
			PoolSize: 10,
		},
	}
}

// Cache errors
var (
	ErrKeyNotFound           = errors.New("cache: key not found")
	ErrCacheDisabled         = errors.New("cache: cache is disabled")
	ErrCacheUnavailable      = errors.New("cache: backend unavailable")
	ErrInvalidCacheType      = errors.New("cache: invalid cache type")
	ErrDeserializationFailed = errors.New("cache: failed to deserialize cached data")
)
