// Package session persists caller-owned conversation context in Redis.
// The understanding pipeline itself never touches this store; the HTTP
// layer loads a context, passes it to the pipeline by value, and saves the
// updated value back.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/config"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/metrics"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

const keyPrefix = "session:ctx:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewStore creates a Redis-backed store from config.
func NewStore(cfg config.SessionConfig, log logger.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return NewStoreWithClient(client, time.Duration(cfg.TTL)*time.Second, log)
}

// NewStoreWithClient wraps an existing Redis client; used by tests.
func NewStoreWithClient(client *redis.Client, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "session-store"}),
	}
}

// NewSessionID mints a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Ping tests the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Load returns the stored context for a session, or nil when none exists.
func (s *Store) Load(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	val, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		metrics.SessionStoreOps.WithLabelValues("load", "miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.SessionStoreOps.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var sc models.SessionContext
	if err := json.Unmarshal([]byte(val), &sc); err != nil {
		metrics.SessionStoreOps.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}

	metrics.SessionStoreOps.WithLabelValues("load", "hit").Inc()
	return &sc, nil
}

// Save stores the context value under the session key, refreshing the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, sc models.SessionContext) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		metrics.SessionStoreOps.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}

	metrics.SessionStoreOps.WithLabelValues("save", "ok").Inc()
	return nil
}

// Delete removes a session context.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
