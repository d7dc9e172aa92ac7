package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"medtrack_backend/internal/feature/auth/domain/entity"
	"medtrack_backend/internal/feature/auth/usecase"
)

// sessionPostgres is a GORM-backed implementation of the SessionRepository
// interface, used when Redis is unavailable.
type sessionPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionPostgres implements SessionRepository.
var _ usecase.SessionRepository = (*sessionPostgres)(nil)

// NewSessionRepository creates a new session repository on the given DB connection.
func NewSessionRepository(db *gorm.DB) *sessionPostgres {
	return &sessionPostgres{db: db}
}

// Create persists a new session to the database.
func (r *sessionPostgres) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByToken retrieves a session by its opaque token.
func (r *sessionPostgres) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Revoke marks a session as revoked by its token.
func (r *sessionPostgres) Revoke(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("token = ?", token).
		Update("revoked_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes all expired sessions from storage.
func (r *sessionPostgres) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&SessionModel{})
	return result.RowsAffected, result.Error
}
