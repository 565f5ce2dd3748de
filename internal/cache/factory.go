package cache

import (
	"fmt"
	"os"
	"strings"

	"github.com/clipstream/api/internal/pkg/log"
)

// NewCache creates a cache instance based on the provided configuration
func NewCache(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	if !config.Backend.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, config.Backend)
	}

	switch config.Backend {
	case CacheTypeMemory:
		return NewMemoryCache(config), nil
	case CacheTypeRedis:
		return NewRedisCache(config)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, config.Backend)
	}
}

// toCacheConfig creates a cache config from the environment with an
// optional service-specific key prefix, e.g. "comments".
func toCacheConfig(prefix string) *CacheConfig {
	cfg := DefaultCacheConfig()
	cfg.Prefix = prefix

	if backend := strings.ToLower(os.Getenv("CACHE_BACKEND")); backend != "" {
		cfg.Backend = CacheType(backend)
	}
	if redisAddr := os.Getenv("REDIS_ADDRESS"); redisAddr != "" {
		cfg.Redis.Address = redisAddr
	}
	if redisPass := os.Getenv("REDIS_PASSWORD"); redisPass != "" {
		cfg.Redis.Password = redisPass
	}

	return cfg
}

// NewGenericCacheServiceFor creates a GenericCacheService for a service prefix.
// An unreachable or misconfigured backend degrades to a disabled cache
// rather than failing startup.
func NewGenericCacheServiceFor(prefix string) *GenericCacheService {
	cfg := toCacheConfig(prefix)

	if strings.EqualFold(os.Getenv("CACHE_ENABLED"), "false") {
		cfg.Enabled = false
		return NewGenericCacheService(nil, cfg)
	}

	backend, err := NewCache(cfg)
	if err != nil {
		log.Warn("Cache backend %s unavailable for %s, caching disabled: %v", cfg.Backend, prefix, err)
		cfg.Enabled = false
		return NewGenericCacheService(nil, cfg)
	}

	return NewGenericCacheService(backend, cfg)
}
