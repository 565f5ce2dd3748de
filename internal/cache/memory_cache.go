package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

// cacheItem represents an item in the memory cache
type cacheItem struct {
	value      []byte
	expiration time.Time
}

// MemoryCache implements Cache interface using in-memory storage
type MemoryCache struct {
	items       map[string]*cacheItem
	mutex       sync.RWMutex
	config      *CacheConfig
	cleanupDone chan struct{}
	closed      bool
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(config *CacheConfig) *MemoryCache {
	if config == nil {
		config = DefaultCacheConfig()
	}

	cache := &MemoryCache{
		items:       make(map[string]*cacheItem),
		config:      config,
		cleanupDone: make(chan struct{}),
	}

	go cache.startCleanup()

	return cache
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mutex.RLock()
	item, exists := c.items[key]
	closed := c.closed
	c.mutex.RUnlock()

	if closed {
		return nil, ErrCacheDisabled
	}
	if !exists || time.Now().After(item.expiration) {
		return nil, ErrKeyNotFound
	}

	result := make([]byte, len(item.value))
	copy(result, item.value)
	return result, nil
}

// Set stores a value in cache with expiration
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCacheDisabled
	}
	if ttl <= 0 {
		ttl = c.config.TTL
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	c.items[key] = &cacheItem{
		value:      stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
	return nil
}

// DeletePattern removes all keys matching the given glob pattern
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key := range c.items {
		if matched, err := path.Match(pattern, key); err == nil && matched {
			delete(c.items, key)
		}
	}
	return nil
}

// Exists checks if a key exists in cache
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiration) {
		return false, nil
	}
	return true, nil
}

// Close stops the cleanup goroutine and drops all items
func (c *MemoryCache) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.cleanupDone)
	c.items = make(map[string]*cacheItem)
	return nil
}

// startCleanup periodically removes expired items
func (c *MemoryCache) startCleanup() {
	interval := c.config.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mutex.Lock()
			for key, item := range c.items {
				if now.After(item.expiration) {
					delete(c.items, key)
				}
			}
			c.mutex.Unlock()
		case <-c.cleanupDone:
			return
		}
	}
}
