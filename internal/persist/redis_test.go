package persist

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client, "user123")

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestRedisStore_SetThenGet(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, []byte(`{"items":[]}`)))

	data, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), data)
}

func TestRedisStore_KeyIsPerOwner(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, []byte("blob")))

	got, err := mr.Get(snapshotKey("user123"))
	require.NoError(t, err)
	assert.Equal(t, "blob", got)
}

func TestRedisStore_SetAppliesTTL(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, store.Set(context.Background(), []byte("blob")))

	ttl := mr.TTL(snapshotKey("user123"))
	assert.Greater(t, ttl.Hours(), 0.0)
}
