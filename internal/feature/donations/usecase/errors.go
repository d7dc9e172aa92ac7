// Package usecase implements the business logic for the donations feature.
package usecase

import "errors"

var (
	// ErrDonationNotFound is returned when no donation exists with the given ID.
	ErrDonationNotFound = errors.New("donation not found")

	// ErrInvalidTransition is returned when a status update violates the
	// donation state machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)
