package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists the session blob under a single Redis key, for
// deployments where the client state must be shared across processes
// (kiosk terminals, companion daemons). The key never expires; logout is
// the only thing that removes it.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend creates a backend storing the session under
// prefix + ":" + storageKey.
func NewRedisBackend(client *redis.Client, prefix, storageKey string) *RedisBackend {
	if prefix == "" {
		prefix = "chatauth"
	}
	return &RedisBackend{
		client: client,
		key:    prefix + ":" + storageKey,
	}
}

// Key returns the Redis key the session is persisted under.
func (b *RedisBackend) Key() string { return b.key }

// Get fetches the blob, mapping redis.Nil to ErrNotFound.
func (b *RedisBackend) Get(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put stores the blob with no TTL.
func (b *RedisBackend) Put(ctx context.Context, data []byte) error {
	return b.client.Set(ctx, b.key, data, 0).Err()
}

// Delete removes the key. Deleting an absent key is a no-op.
func (b *RedisBackend) Delete(ctx context.Context) error {
	return b.client.Del(ctx, b.key).Err()
}
