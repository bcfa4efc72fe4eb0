// Package adapters provides the store implementations for the handwriting
// feature.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/domain/entity"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/usecase"
)

// PendingRedis implements usecase.PendingStore using Redis. Keys expire
// after the configured TTL, which replaces both the explicit eviction and
// the restart-recovery snapshot a process-local map would need.
type PendingRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Compile-time check that PendingRedis implements PendingStore.
var _ usecase.PendingStore = (*PendingRedis)(nil)

// NewPendingRedis creates a new PendingRedis instance.
// If ttl is 0, it defaults to 24 hours. If prefix is empty, it uses
// "ocr:pending".
func NewPendingRedis(client *redis.Client, prefix string, ttl time.Duration) *PendingRedis {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if prefix == "" {
		prefix = "ocr:pending"
	}
	return &PendingRedis{client: client, prefix: prefix, ttl: ttl}
}

// key returns the Redis key for a request id.
func (r *PendingRedis) key(requestID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, requestID)
}

// Put stores a pending request under its request id with the store TTL.
func (r *PendingRedis) Put(ctx context.Context, req *entity.PendingRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal pending request: %w", err)
	}
	return r.client.Set(ctx, r.key(req.RequestID), data, r.ttl).Err()
}

// Get retrieves a pending request by id.
func (r *PendingRedis) Get(ctx context.Context, requestID string) (*entity.PendingRequest, error) {
	data, err := r.client.Get(ctx, r.key(requestID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrRequestNotFound
		}
		return nil, err
	}

	var req entity.PendingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending request: %w", err)
	}
	return &req, nil
}

// Delete removes a pending request.
func (r *PendingRedis) Delete(ctx context.Context, requestID string) error {
	return r.client.Del(ctx, r.key(requestID)).Err()
}

// Count returns the number of pending requests. KEYS is O(N) but this only
// backs the debug endpoint.
func (r *PendingRedis) Count(ctx context.Context) (int64, error) {
	keys, err := r.client.Keys(ctx, r.prefix+":*").Result()
	if err != nil {
		return 0, err
	}
	return int64(len(keys)), nil
}
