// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"medtrack_backend/internal/feature/auth/domain/entity"
	"medtrack_backend/internal/feature/auth/usecase"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// userPostgres is a GORM-backed implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository creates a new user repository on the given DB connection.
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create adds a user to the database. Taken usernames and emails surface as
// usecase.ErrUsernameTaken / usecase.ErrEmailTaken: the pre-checks give a
// precise error for the common case, the unique constraints close the race.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if _, err := r.FindByUsername(ctx, u.Username); err == nil {
		return usecase.ErrUsernameTaken
	} else if !errors.Is(err, usecase.ErrUserNotFound) {
		return err
	}
	if err := r.findByEmail(ctx, u.Email); err == nil {
		return usecase.ErrEmailTaken
	} else if !errors.Is(err, usecase.ErrUserNotFound) {
		return err
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername retrieves a user by login name.
// It returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by its opaque ID.
// It returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userPostgres) findByEmail(ctx context.Context, email string) error {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrUserNotFound
		}
		return err
	}
	return nil
}
