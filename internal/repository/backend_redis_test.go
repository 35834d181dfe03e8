package repository_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steakhouse/storefront/internal/repository"
)

func newRedisBackend(t *testing.T) (repository.Backend, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewRedisBackend(client, "storefront:"), srv
}

func TestRedisBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("set stores under prefix without ttl", func(t *testing.T) {
		b, srv := newRedisBackend(t)

		require.NoError(t, b.Set(ctx, "session:1:cart", "envelope"))

		raw, err := srv.Get("storefront:session:1:cart")
		require.NoError(t, err)
		assert.Equal(t, "envelope", raw)
		assert.Zero(t, srv.TTL("storefront:session:1:cart"))
		assert.False(t, srv.Exists("session:1:cart"))
	})

	t.Run("get reads prefixed key", func(t *testing.T) {
		b, srv := newRedisBackend(t)
		require.NoError(t, srv.Set("storefront:session:1:cart", "envelope"))

		v, ok, err := b.Get(ctx, "session:1:cart")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "envelope", v)
	})

	t.Run("missing key is absent", func(t *testing.T) {
		b, _ := newRedisBackend(t)

		v, ok, err := b.Get(ctx, "session:1:cart")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		b, srv := newRedisBackend(t)
		require.NoError(t, b.Set(ctx, "session:1:cart", "envelope"))

		require.NoError(t, b.Remove(ctx, "session:1:cart"))
		assert.False(t, srv.Exists("storefront:session:1:cart"))
		require.NoError(t, b.Remove(ctx, "session:1:cart"))
	})

	t.Run("empty key", func(t *testing.T) {
		b, srv := newRedisBackend(t)

		assert.ErrorIs(t, b.Set(ctx, "", "envelope"), repository.ErrKeyEmpty)
		assert.Empty(t, srv.Keys())
	})

	t.Run("server down surfaces error", func(t *testing.T) {
		b, srv := newRedisBackend(t)
		srv.Close()

		_, ok, err := b.Get(ctx, "session:1:cart")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
