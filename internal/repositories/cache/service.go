// Package cache is a Redis read-through cache for wallet balances and
// payment history. Entries are advisory: every committed transfer
// invalidates both parties' keys and the store stays authoritative.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Service wraps a Redis client with JSON payloads and a default TTL.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService creates a cache service with the given default TTL.
func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{client: client, ttl: defaultTTL}
}

// Get unmarshals the cached value into dest. The bool reports whether
// the key existed.
func (s *Service) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Set stores value as JSON under key with the default TTL.
func (s *Service) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

// SetWithTTL stores value as JSON under key with an explicit TTL.
func (s *Service) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes the given keys.
func (s *Service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// WalletKey is the cache key for one user's wallet.
func WalletKey(userID uint) string {
	return fmt.Sprintf("wallet:user:%d", userID)
}

// HistoryKey is the cache key for one user's payment history snapshot.
func HistoryKey(userID uint) string {
	return fmt.Sprintf("payments:user:%d", userID)
}

// InvalidateUser drops the wallet and history entries for one user.
func (s *Service) InvalidateUser(ctx context.Context, userID uint) error {
	return s.Delete(ctx, WalletKey(userID), HistoryKey(userID))
}

// HealthCheck pings Redis.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Service) Close() error {
	return s.client.Close()
}
