// Package redis provides a Redis-backed session store.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// SessionStore implements ports.SessionStore using Redis.
type SessionStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithTTL sets the key expiration. The engine enforces the conversational
// idle timeout itself; the TTL is a safety net so abandoned sessions do not
// accumulate. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *SessionStore) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for sessions.
func WithPrefix(prefix string) Option {
	return func(s *SessionStore) {
		s.prefix = prefix
	}
}

// New creates a Redis session store with options.
func New(address, password string, db int, opts ...Option) *SessionStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis session store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *SessionStore {
	store := &SessionStore{
		client: client,
		prefix: "baketalks:session:",
		ttl:    0,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *SessionStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Save persists the state to Redis as JSON.
func (s *SessionStore) Save(ctx context.Context, sessionID string, state *domain.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the state from Redis.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.ConversationState, error) {
	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var state domain.ConversationState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return &state, nil
}

// Clear removes the session.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// Ping verifies connectivity.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
