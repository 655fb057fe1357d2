package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dailydish/backend/internal/types"
)

// pickStateKey namespaces the per-device daily pick records in Redis.
func pickStateKey(deviceID string) string {
	return "dailypick:" + deviceID
}

// RedisPickStateStore persists DailyPickState as a JSON blob per device.
// Entries are kept without expiry: the recent-history list must survive
// across days, and stale date keys heal on the next load.
type RedisPickStateStore struct {
	client *redis.Client
}

// NewRedisPickStateStore creates a new RedisPickStateStore instance.
func NewRedisPickStateStore(client *redis.Client) *RedisPickStateStore {
	return &RedisPickStateStore{client: client}
}

// Get returns the stored state for a device, or an empty state when the
// device has never picked.
func (s *RedisPickStateStore) Get(ctx context.Context, deviceID string) (*types.DailyPickState, error) {
	data, err := s.client.Get(ctx, pickStateKey(deviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &types.DailyPickState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pick state: %w", err)
	}

	var state types.DailyPickState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode pick state: %w", err)
	}
	return &state, nil
}

// Put stores the state for a device.
func (s *RedisPickStateStore) Put(ctx context.Context, deviceID string, state *types.DailyPickState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode pick state: %w", err)
	}
	if err := s.client.Set(ctx, pickStateKey(deviceID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write pick state: %w", err)
	}
	return nil
}
