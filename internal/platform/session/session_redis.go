// Package session provides the Redis-backed session store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"medtrack_backend/internal/feature/auth/domain/entity"
	"medtrack_backend/internal/feature/auth/usecase"
)

// revokedRetention is how long a revoked session is kept around so repeated
// logouts and in-flight requests resolve deterministically.
const revokedRetention = 24 * time.Hour

// SessionRedis implements usecase.SessionRepository using Redis.
// Expiry is delegated to Redis key TTLs.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure SessionRedis implements SessionRepository.
var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	if prefix == "" {
		prefix = "session"
	}
	return &SessionRedis{client: client, prefix: prefix}
}

// sessionKey returns the Redis key for a session token.
func (r *SessionRedis) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Create persists a new session with a TTL matching its expiry.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	return r.client.Set(ctx, r.sessionKey(session.Token), data, ttl).Err()
}

// FindByToken retrieves a session by its opaque token.
func (r *SessionRedis) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Revoke marks a session as revoked. The record is kept briefly instead of
// deleted so a revoked token stays distinguishable from an unknown one.
func (r *SessionRedis) Revoke(ctx context.Context, token string) error {
	session, err := r.FindByToken(ctx, token)
	if err != nil {
		return err
	}

	now := time.Now()
	session.RevokedAt = &now

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.sessionKey(token), data, revokedRetention).Err()
}

// DeleteExpired is a no-op: Redis drops expired sessions via key TTL.
func (r *SessionRedis) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
