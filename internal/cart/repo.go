package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/redis"
)

// ErrNoSnapshot signals that a session has never persisted a cart.
var ErrNoSnapshot = errors.New("cart: no snapshot for session")

// SnapshotStore persists the full cart snapshot per session. Every write
// replaces the previous snapshot wholesale.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, data []byte) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps one snapshot slot per session in Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wires the snapshot store. A zero TTL keeps snapshots until
// the session clears them.
func NewRedisStore(client *redis.Client, cfg config.CartConfig) *RedisStore {
	return &RedisStore{client: client, ttl: cfg.SnapshotTTL}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.client.CartSnapshotKey(sessionID))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart snapshot: %w", err)
	}
	return []byte(value), nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, data []byte) error {
	if err := s.client.Set(ctx, s.client.CartSnapshotKey(sessionID), data, s.ttl); err != nil {
		return fmt.Errorf("saving cart snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartSnapshotKey(sessionID)); err != nil {
		return fmt.Errorf("deleting cart snapshot: %w", err)
	}
	return nil
}
