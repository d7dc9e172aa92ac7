package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"medtrack_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// sessionLifetime is how long a session stays valid after login.
	sessionLifetime = 7 * 24 * time.Hour
)

// dummyHash is a bcrypt hash compared against when the username is unknown,
// so login latency does not reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameTaken or ErrEmailTaken
	// when a uniqueness constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by login name.
	// It returns ErrUserNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by its opaque ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// RegisterInput carries the validated fields for a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthUsecase implements registration, login and session resolution.
type AuthUsecase struct {
	users    UserRepository
	sessions SessionRepository
	now      func() time.Time
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions, now: time.Now}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new account with a hashed password and the default role.
// Uniqueness violations surface as ErrUsernameTaken / ErrEmailTaken.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      entity.RoleUser,
		Active:    true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and opens a server-side session. The bcrypt
// comparison always runs, against a dummy hash when the username is unknown,
// to keep response timing uniform. Disabled accounts are rejected regardless
// of password correctness.
func (u *AuthUsecase) Login(ctx context.Context, username, password, userAgent, ipAddress string) (*entity.User, *entity.Session, error) {
	user, err := u.users.FindByUsername(ctx, username)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, nil, ErrAccountDisabled
	}

	now := u.now()
	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionLifetime),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	return user, session, nil
}

// Logout revokes the session behind the given token. Unknown tokens are not
// an error: the client's goal state (no valid session) already holds.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	err := u.sessions.Revoke(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	return err
}

// CurrentUser resolves a session token to its authenticated user.
// Expired or revoked sessions, and disabled users, resolve to ErrSessionInvalid.
func (u *AuthUsecase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	session, err := u.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionInvalid
	}
	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, ErrSessionInvalid
	}
	return user, nil
}
