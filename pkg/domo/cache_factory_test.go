package domo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig_Memory(t *testing.T) {
	t.Parallel()

	cache, err := NewCacheFromConfig(&CacheConfig{
		Type:   CacheTypeMemory,
		Memory: &MemoryCacheConfig{MaxSize: 5},
	})
	require.NoError(t, err)

	_, ok := cache.(*MemoryCache)
	assert.True(t, ok)
}

func TestNewCacheFromConfig_NilDefaultsToMemory(t *testing.T) {
	t.Parallel()

	cache, err := NewCacheFromConfig(nil)
	require.NoError(t, err)

	_, ok := cache.(*MemoryCache)
	assert.True(t, ok)
}

func TestNewCacheFromConfig_None(t *testing.T) {
	t.Parallel()

	cache, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeNone})
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), "anything")
	require.ErrorIs(t, err, ErrCacheDisabled)
	assert.False(t, cache.Has(context.Background(), "anything"))
}

func TestNewCacheFromConfig_NATSWithoutConfig(t *testing.T) {
	t.Parallel()

	_, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeNATS})
	require.ErrorIs(t, err, ErrNATSConfigRequired)
}

func TestNewCacheFromConfig_UnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := NewCacheFromConfig(&CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, ErrUnsupportedCacheType)
}
