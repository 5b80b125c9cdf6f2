package nylas_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		cache := nylas.NewMemoryCache(10)

		entry := &nylas.CacheEntry{
			Data:      []byte(`{"id": "msg-1"}`),
			ExpiresAt: time.Now().Add(time.Minute),
			ETag:      "abc",
		}
		require.NoError(t, cache.Set(ctx, "https://api.example.com/messages/msg-1", entry))

		got, err := cache.Get(ctx, "https://api.example.com/messages/msg-1")
		require.NoError(t, err)
		assert.Equal(t, entry.Data, got.Data)
		assert.Equal(t, "abc", got.ETag)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		cache := nylas.NewMemoryCache(10)

		_, err := cache.Get(ctx, "missing")
		require.ErrorIs(t, err, nylas.ErrCacheKeyNotFound)
	})

	t.Run("expired entry is removed", func(t *testing.T) {
		t.Parallel()

		cache := nylas.NewMemoryCache(10)

		entry := &nylas.CacheEntry{
			Data:      []byte("stale"),
			ExpiresAt: time.Now().Add(-time.Second),
		}
		require.NoError(t, cache.Set(ctx, "key", entry))

		_, err := cache.Get(ctx, "key")
		require.ErrorIs(t, err, nylas.ErrCacheEntryExpired)

		// A second read reports not-found, the entry is gone
		_, err = cache.Get(ctx, "key")
		require.ErrorIs(t, err, nylas.ErrCacheKeyNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		cache := nylas.NewMemoryCache(10)

		require.NoError(t, cache.Set(ctx, "key", &nylas.CacheEntry{Data: []byte("x")}))
		require.NoError(t, cache.Delete(ctx, "key"))

		_, err := cache.Get(ctx, "key")
		require.ErrorIs(t, err, nylas.ErrCacheKeyNotFound)
	})

	t.Run("evicts oldest when full", func(t *testing.T) {
		t.Parallel()

		cache := nylas.NewMemoryCache(3)

		for i := range 4 {
			key := fmt.Sprintf("key-%d", i)
			require.NoError(t, cache.Set(ctx, key, &nylas.CacheEntry{Data: []byte(key)}))
		}

		_, err := cache.Get(ctx, "key-0")
		require.ErrorIs(t, err, nylas.ErrCacheKeyNotFound)

		for i := 1; i < 4; i++ {
			_, err := cache.Get(ctx, fmt.Sprintf("key-%d", i))
			require.NoError(t, err)
		}
	})

	t.Run("zero expiry never expires", func(t *testing.T) {
		t.Parallel()

		entry := &nylas.CacheEntry{Data: []byte("x")}
		assert.False(t, entry.Expired())
	})
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("nil config defaults to memory", func(t *testing.T) {
		t.Parallel()

		cache, err := nylas.NewCacheFromConfig(nil)
		require.NoError(t, err)
		require.NotNil(t, cache)

		require.NoError(t, cache.Set(ctx, "key", &nylas.CacheEntry{Data: []byte("x")}))

		got, err := cache.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), got.Data)
	})

	t.Run("none type stores nothing", func(t *testing.T) {
		t.Parallel()

		cache, err := nylas.NewCacheFromConfig(&nylas.CacheConfig{Type: nylas.CacheTypeNone})
		require.NoError(t, err)

		require.NoError(t, cache.Set(ctx, "key", &nylas.CacheEntry{Data: []byte("x")}))

		_, err = cache.Get(ctx, "key")
		require.ErrorIs(t, err, nylas.ErrCacheDisabled)
	})

	t.Run("memory type honors the configured size", func(t *testing.T) {
		t.Parallel()

		cache, err := nylas.NewCacheFromConfig(&nylas.CacheConfig{
			Type:   nylas.CacheTypeMemory,
			Memory: &nylas.MemoryCacheConfig{MaxSize: 1},
		})
		require.NoError(t, err)

		require.NoError(t, cache.Set(ctx, "first", &nylas.CacheEntry{Data: []byte("1")}))
		require.NoError(t, cache.Set(ctx, "second", &nylas.CacheEntry{Data: []byte("2")}))

		_, err = cache.Get(ctx, "first")
		require.ErrorIs(t, err, nylas.ErrCacheKeyNotFound)

		_, err = cache.Get(ctx, "second")
		require.NoError(t, err)
	})
}
