// Package redis provides the Redis-backed collection store
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fridgewise/core/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// keyPrefix namespaces collection snapshots inside a shared database
const keyPrefix = "fridgewise:collections:"

// Store implements the collection store on Redis string keys, one
// snapshot per collection, no expiry.
type Store struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// NewStore connects to Redis and verifies the connection before use
func NewStore(cfg config.RedisConfig, logger *zap.Logger) (*Store, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{cfg.Addr},
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis store initialized",
		zap.String("addr", cfg.Addr),
		zap.Int("database", cfg.Database))

	return &Store{client: client, logger: logger}, nil
}

// Get returns the stored snapshot. A collection that was never written
// reads as nil with no error.
func (s *Store) Get(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Debug("Redis get failed", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Set replaces the collection snapshot
func (s *Store) Set(ctx context.Context, collection string, data []byte) error {
	err := s.client.Set(ctx, keyPrefix+collection, data, 0).Err()
	if err != nil {
		s.logger.Error("Redis set failed", zap.String("collection", collection), zap.Error(err))
		return err
	}
	return nil
}

// Delete drops the collection entirely
func (s *Store) Delete(ctx context.Context, collection string) error {
	err := s.client.Del(ctx, keyPrefix+collection).Err()
	if err != nil {
		s.logger.Error("Redis delete failed", zap.String("collection", collection), zap.Error(err))
		return err
	}
	return nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	return s.client.Close()
}
