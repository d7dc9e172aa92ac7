package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending cannot skip to completed", StatusPending, StatusCompleted, false},
		{"confirmed cannot return to pending", StatusConfirmed, StatusPending, false},
		{"confirmed cannot be cancelled", StatusConfirmed, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"completed cannot be cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusCompleted, false},
		{"cancelled cannot be revived", StatusCancelled, StatusPending, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDonationStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []DonationStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, DonationStatus("shipped").Valid())
	assert.False(t, DonationStatus("").Valid())
}
