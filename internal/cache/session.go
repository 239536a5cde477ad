package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sessionPrefix is the Redis key prefix for session entries.
const sessionPrefix = "session:"

// ErrNoSession indicates the presented token has no server-side session.
var ErrNoSession = errors.New("session not found")

// Sessions is the session table: an opaque client-presented token mapped
// to an authenticated user ID, bounded by a TTL.
type Sessions struct {
	cache *Cache
	ttl   time.Duration
}

// NewSessions creates a session store on top of the cache.
func NewSessions(c *Cache, ttl time.Duration) *Sessions {
	return &Sessions{cache: c, ttl: ttl}
}

// Create establishes a new session for the user and returns the token.
func (s *Sessions) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.cache.client.Set(ctx, sessionPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// Get resolves a token to the user ID it was bound to.
// Returns ErrNoSession for unknown or expired tokens.
func (s *Sessions) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.cache.client.Get(ctx, sessionPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return userID, nil
}

// Destroy removes the session for the token. Destroying a token that has
// no session is not an error.
func (s *Sessions) Destroy(ctx context.Context, token string) error {
	if err := s.cache.client.Del(ctx, sessionPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
