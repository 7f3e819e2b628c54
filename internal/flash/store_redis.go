package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const flashKeyPrefix = "loandesk:flash:"

// RedisStore keeps toasts in a redis list per session so every dashboard
// instance sees the same pending messages.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis constructs a redis-backed store. Lists expire ttl after the last push.
func NewRedis(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func flashKey(sessionID string) string {
	return flashKeyPrefix + sessionID
}

func (s *RedisStore) Push(ctx context.Context, sessionID string, toast Toast) error {
	if sessionID == "" {
		return nil
	}
	data, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("marshal toast: %w", err)
	}
	key := flashKey(sessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, string(data))
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push toast: %w", err)
	}
	return nil
}

// Pop reads and deletes the list in one MULTI so concurrent requests never
// deliver the same toast twice.
func (s *RedisStore) Pop(ctx context.Context, sessionID string) ([]Toast, error) {
	if sessionID == "" {
		return nil, nil
	}
	key := flashKey(sessionID)
	var items *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pop toasts: %w", err)
	}

	raw := items.Val()
	if len(raw) == 0 {
		return nil, nil
	}
	toasts := make([]Toast, 0, len(raw))
	for _, item := range raw {
		var toast Toast
		if err := json.Unmarshal([]byte(item), &toast); err != nil {
			return nil, fmt.Errorf("decode toast: %w", err)
		}
		toasts = append(toasts, toast)
	}
	return toasts, nil
}
