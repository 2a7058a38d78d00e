package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// RedisSlot persists the session under the fixed storage name in Redis.
// No TTL is set: the client never expires a session on its own, it only
// reacts to the backend rejecting the token.
type RedisSlot struct {
	client *redis.Client
}

// NewRedisSlot creates a RedisSlot wrapping the given Redis client.
func NewRedisSlot(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

// Load reads the persisted session. A missing key means no prior session.
func (r *RedisSlot) Load(ctx context.Context) (*domain.PersistedSession, error) {
	data, err := r.client.Get(ctx, domain.StorageName).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}

	var s domain.PersistedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &s, nil
}

// Save overwrites the slot with the given session.
func (r *RedisSlot) Save(ctx context.Context, s domain.PersistedSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}
	return r.client.Set(ctx, domain.StorageName, data, 0).Err()
}

// Clear removes the slot. Deleting an absent key is not an error in Redis.
func (r *RedisSlot) Clear(ctx context.Context) error {
	return r.client.Del(ctx, domain.StorageName).Err()
}
