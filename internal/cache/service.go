package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clipstream/api/internal/pkg/log"
)

// GenericCacheService provides a JSON caching layer shared by the domain services
type GenericCacheService struct {
	cache  Cache
	config *CacheConfig
}

// NewGenericCacheService creates a new generic cache service
func NewGenericCacheService(cache Cache, config *CacheConfig) *GenericCacheService {
	if config == nil {
		config = DefaultCacheConfig()
	}

	return &GenericCacheService{
		cache:  cache,
		config: config,
	}
}

// GetCached retrieves and unmarshals cached data into the target interface
func (gcs *GenericCacheService) GetCached(ctx context.Context, key string, target interface{}) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(key)

	data, err := gcs.cache.Get(ctx, fullKey)
	if err != nil {
		if err != ErrKeyNotFound {
			log.Error("Cache get error for key %s: %v", fullKey, err)
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Error("Cache data unmarshal error for key %s: %v", fullKey, err)
		return fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}

	return nil
}

// CacheData marshals and stores data under the given key
func (gcs *GenericCacheService) CacheData(ctx context.Context, key string, data interface{}, ttl ...time.Duration) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data for caching: %w", err)
	}

	expiry := gcs.config.TTL
	if len(ttl) > 0 && ttl[0] > 0 {
		expiry = ttl[0]
	}

	fullKey := gcs.buildKey(key)
	if err := gcs.cache.Set(ctx, fullKey, payload, expiry); err != nil {
		log.Error("Cache set error for key %s: %v", fullKey, err)
		return err
	}

	return nil
}

// InvalidateKey removes a single cached entry
func (gcs *GenericCacheService) InvalidateKey(ctx context.Context, key string) error {
	if !gcs.IsEnabled() {
		return nil
	}
	return gcs.cache.Delete(ctx, gcs.buildKey(key))
}

// InvalidatePattern removes all cached entries matching the pattern
func (gcs *GenericCacheService) InvalidatePattern(ctx context.Context, pattern string) error {
	if !gcs.IsEnabled() {
		return nil
	}
	return gcs.cache.DeletePattern(ctx, gcs.buildKey(pattern))
}

// IsEnabled reports whether the cache layer is active
func (gcs *GenericCacheService) IsEnabled() bool {
	return gcs.config.Enabled && gcs.cache != nil
}

// Close releases the underlying cache backend
func (gcs *GenericCacheService) Close() error {
	if gcs.cache == nil {
		return nil
	}
	return gcs.cache.Close()
}

// buildKey prefixes the key with the configured service prefix
func (gcs *GenericCacheService) buildKey(key string) string {
	if gcs.config.Prefix == "" {
		return key
	}
	return gcs.config.Prefix + ":" + key
}
