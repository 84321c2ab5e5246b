package domo

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(10)
	ctx := context.Background()

	entry := &CacheEntry{
		Data:      []byte(`{"id":"abc-123"}`),
		ExpiresAt: time.Now().Add(time.Minute),
	}

	err := cache.Set(ctx, "GET:/v1/datasets/abc-123", entry)
	require.NoError(t, err)

	got, err := cache.Get(ctx, "GET:/v1/datasets/abc-123")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)
}

func TestMemoryCache_GetMissing(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "absent")
	require.ErrorIs(t, err, ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(10)
	ctx := context.Background()

	err := cache.Set(ctx, "stale", &CacheEntry{
		Data:      []byte("old"),
		ExpiresAt: time.Now().Add(-time.Second),
	})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "stale")
	require.ErrorIs(t, err, ErrCacheEntryExpired)

	// Expired entries are removed on access.
	assert.False(t, cache.Has(ctx, "stale"))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := cache.Set(ctx, fmt.Sprintf("key-%d", i), &CacheEntry{
			Data:      []byte("data"),
			ExpiresAt: time.Now().Add(time.Minute),
		})
		require.NoError(t, err)
	}

	err := cache.Delete(ctx, "key-0")
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "key-0"))
	assert.True(t, cache.Has(ctx, "key-1"))

	err = cache.Clear(ctx)
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "key-1"))
	assert.False(t, cache.Has(ctx, "key-2"))
}

func TestMemoryCache_EvictsSoonestToExpire(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(2)
	ctx := context.Background()

	err := cache.Set(ctx, "short", &CacheEntry{
		Data:      []byte("a"),
		ExpiresAt: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	err = cache.Set(ctx, "long", &CacheEntry{
		Data:      []byte("b"),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	err = cache.Set(ctx, "new", &CacheEntry{
		Data:      []byte("c"),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, cache.Has(ctx, "short"))
	assert.True(t, cache.Has(ctx, "long"))
	assert.True(t, cache.Has(ctx, "new"))
}

func TestMemoryCache_Cleanup(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(10)
	ctx := context.Background()

	err := cache.Set(ctx, "live", &CacheEntry{
		Data:      []byte("a"),
		ExpiresAt: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	err = cache.Set(ctx, "dead", &CacheEntry{
		Data:      []byte("b"),
		ExpiresAt: time.Now().Add(-time.Second),
	})
	require.NoError(t, err)

	cache.Cleanup()

	assert.True(t, cache.Has(ctx, "live"))
	assert.False(t, cache.Has(ctx, "dead"))
}

func TestCacheManager_KeyDerivation(t *testing.T) {
	t.Parallel()

	manager := NewCacheManager(NewMemoryCache(10), nil)

	plain := manager.GetCacheKey(http.MethodGet, "/v1/datasets", nil)
	assert.Equal(t, "GET:/v1/datasets", plain)

	withParams := manager.GetCacheKey(http.MethodGet, "/v1/datasets", map[string]string{
		"limit":  "10",
		"offset": "0",
	})
	reordered := manager.GetCacheKey(http.MethodGet, "/v1/datasets", map[string]string{
		"offset": "0",
		"limit":  "10",
	})

	assert.Equal(t, withParams, reordered)
	assert.NotEqual(t, plain, withParams)
}

func TestCacheManager_Stats(t *testing.T) {
	t.Parallel()

	manager := NewCacheManager(NewMemoryCache(10), nil)
	ctx := context.Background()

	_, err := manager.Get(ctx, "miss")
	require.Error(t, err)

	err = manager.Set(ctx, "hit", []byte("data"), time.Minute)
	require.NoError(t, err)

	data, err := manager.Get(ctx, "hit")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	stats := manager.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.InEpsilon(t, 0.5, stats.GetHitRate(), 0.001)
}

func TestCacheManager_NilBackend(t *testing.T) {
	t.Parallel()

	manager := NewCacheManager(nil, nil)
	ctx := context.Background()

	err := manager.Set(ctx, "key", []byte("data"), time.Minute)
	require.NoError(t, err)

	_, err = manager.Get(ctx, "key")
	require.ErrorIs(t, err, ErrCacheKeyNotFound)
}

func TestCachingPolicy_ShouldCache(t *testing.T) {
	t.Parallel()

	policy := DefaultCachingPolicy()

	assert.True(t, policy.ShouldCache(http.MethodGet, "/v1/datasets", http.StatusOK))
	assert.False(t, policy.ShouldCache(http.MethodPost, "/v1/datasets", http.StatusOK))
	assert.False(t, policy.ShouldCache(http.MethodGet, "/v1/datasets", http.StatusNotFound))

	// Volatile endpoints are excluded by default.
	assert.False(t, policy.ShouldCache(http.MethodGet, "/v1/audit", http.StatusOK))
	assert.False(t, policy.ShouldCache(http.MethodGet, "/v1/streams/5/executions", http.StatusOK))
	assert.False(t, policy.ShouldCache(http.MethodGet, "/query/v1/export/abc", http.StatusOK))
}

func TestCachingPolicy_IncludePaths(t *testing.T) {
	t.Parallel()

	policy := &CachingPolicy{
		CacheGET:     true,
		IncludePaths: []string{"/v1/datasets"},
	}

	assert.True(t, policy.ShouldCache(http.MethodGet, "/v1/datasets/abc", http.StatusOK))
	assert.False(t, policy.ShouldCache(http.MethodGet, "/v1/users", http.StatusOK))
}
