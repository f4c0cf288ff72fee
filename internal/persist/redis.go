package persist

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client, ownerID string) *RedisStore {
	return &RedisStore{
		client:  client,
		ownerID: ownerID,
		baseTTL: 30 * 24 * time.Hour,
	}
}

// RedisStore keeps the cart snapshot in Redis, one key per cart owner.
type RedisStore struct {
	client  *redis.Client
	ownerID string
	baseTTL time.Duration
}

func (r RedisStore) Get(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, snapshotKey(r.ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r RedisStore) Set(ctx context.Context, data []byte) error {
	jitter := time.Duration(rand.Intn(60)) * time.Minute
	ttl := r.baseTTL + jitter
	if err := r.client.Set(ctx, snapshotKey(r.ownerID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func snapshotKey(ownerID string) string {
	return fmt.Sprintf("yoavs-shoes-cart:%s", ownerID)
}
