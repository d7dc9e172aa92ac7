package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtrack_backend/internal/feature/auth/domain/entity"
	"medtrack_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(token string, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		Token:     token,
		UserID:    "user-1",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionRedis_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session *entity.Session
		wantErr bool
	}{
		{
			name:    "success: create session",
			session: createTestSession("tok-001", 7*24*time.Hour),
			wantErr: false,
		},
		{
			name:    "failure: already expired session",
			session: createTestSession("tok-expired", -time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := setupTestRedis(t)
			repo := NewSessionRedis(client, "session")

			err := repo.Create(context.Background(), tt.session)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionRedis_FindByToken(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		created := createTestSession("tok-1", time.Hour)
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByToken(context.Background(), "tok-1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", found.UserID)
		assert.True(t, found.IsValid())
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		_, err := repo.FindByToken(context.Background(), "nope")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("ttl expiry drops the session", func(t *testing.T) {
		t.Parallel()

		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		require.NoError(t, repo.Create(context.Background(), createTestSession("tok-1", time.Minute)))

		mr.FastForward(2 * time.Minute)

		_, err := repo.FindByToken(context.Background(), "tok-1")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_Revoke(t *testing.T) {
	t.Parallel()

	t.Run("revoked session stays resolvable but invalid", func(t *testing.T) {
		t.Parallel()

		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		require.NoError(t, repo.Create(context.Background(), createTestSession("tok-1", time.Hour)))
		require.NoError(t, repo.Revoke(context.Background(), "tok-1"))

		found, err := repo.FindByToken(context.Background(), "tok-1")
		require.NoError(t, err)
		assert.True(t, found.IsRevoked())
		assert.False(t, found.IsValid())
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		err := repo.Revoke(context.Background(), "nope")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}
