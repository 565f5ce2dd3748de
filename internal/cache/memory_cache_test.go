package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	err := c.Set(ctx, "k1", []byte("v1"), time.Minute)
	assert.NoError(t, err)

	value, err := c.Get(ctx, "k1")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
}

func TestMemoryCache_GetMissing(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	err := c.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	assert.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	assert.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k1"))

	exists, err := c.Exists(ctx, "k1")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	assert.NoError(t, c.Set(ctx, "comments:video:a:page:1", []byte("1"), time.Minute))
	assert.NoError(t, c.Set(ctx, "comments:video:a:page:2", []byte("2"), time.Minute))
	assert.NoError(t, c.Set(ctx, "comments:video:b:page:1", []byte("3"), time.Minute))

	assert.NoError(t, c.DeletePattern(ctx, "comments:video:a:*"))

	existsA, _ := c.Exists(ctx, "comments:video:a:page:1")
	existsB, _ := c.Exists(ctx, "comments:video:b:page:1")
	assert.False(t, existsA)
	assert.True(t, existsB)
}

func TestGenericCacheService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache(DefaultCacheConfig())
	defer backend.Close()

	svc := NewGenericCacheService(backend, &CacheConfig{Enabled: true, Prefix: "test", TTL: time.Minute})

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	assert.NoError(t, svc.CacheData(ctx, "item", payload{Name: "clip", Count: 3}))

	var got payload
	assert.NoError(t, svc.GetCached(ctx, "item", &got))
	assert.Equal(t, "clip", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestGenericCacheService_Disabled(t *testing.T) {
	ctx := context.Background()
	svc := NewGenericCacheService(nil, &CacheConfig{Enabled: false})

	err := svc.CacheData(ctx, "item", "value")
	assert.ErrorIs(t, err, ErrCacheDisabled)

	var got string
	err = svc.GetCached(ctx, "item", &got)
	assert.ErrorIs(t, err, ErrCacheDisabled)
}
