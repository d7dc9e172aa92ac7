// Package usecase implements the business logic for the medicines feature.
package usecase

import "errors"

var (
	// ErrMedicineNotFound is returned when no medicine exists with the given ID.
	ErrMedicineNotFound = errors.New("medicine not found")

	// ErrInvalidDate is returned when an expiry date cannot be parsed.
	ErrInvalidDate = errors.New("invalid expiry date")
)
