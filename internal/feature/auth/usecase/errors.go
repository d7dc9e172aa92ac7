// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username, email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering with a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned on login when the username is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDisabled is returned on login for accounts with Active=false.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrSessionNotFound is returned when a session token resolves to nothing.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionInvalid is returned when a session exists but is expired or revoked.
	ErrSessionInvalid = errors.New("session is expired or revoked")
)
