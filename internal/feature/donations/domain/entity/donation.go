// Package entity defines the domain models for the donations feature.
package entity

import "time"

// DonationStatus is the lifecycle state of a donation pickup request.
type DonationStatus string

const (
	// StatusPending is the initial state of every donation request.
	StatusPending DonationStatus = "pending"

	// StatusConfirmed means an admin accepted the pickup request.
	StatusConfirmed DonationStatus = "confirmed"

	// StatusCompleted means the pickup occurred. Terminal.
	StatusCompleted DonationStatus = "completed"

	// StatusCancelled means the request was declined. Terminal.
	StatusCancelled DonationStatus = "cancelled"
)

// PickupWindows are the three fixed time ranges a donor may select.
var PickupWindows = []string{
	"Morning (9 AM - 12 PM)",
	"Afternoon (12 PM - 4 PM)",
	"Evening (4 PM - 7 PM)",
}

// transitions is the full table of legal status changes. Anything absent
// here is rejected: terminal states have no successors and pending cannot
// skip straight to completed.
var transitions = map[DonationStatus][]DonationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known donation statuses.
func (s DonationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Donation represents a scheduled medicine pickup by an NGO.
// NGOName is a denormalized reference to the NGO's name, not its ID.
type Donation struct {
	ID                  uint           `gorm:"primaryKey"`
	NGOName             string         `gorm:"size:255;not null"`
	PickupDate          time.Time      `gorm:"not null"`
	PickupTime          string         `gorm:"size:50;not null"`
	Address             string         `gorm:"size:500;not null"`
	ContactNumber       string         `gorm:"size:50;not null"`
	SpecialInstructions string         `gorm:"size:1000"`
	Status              DonationStatus `gorm:"size:20;not null;default:pending"`

	// MedicineIDs is declared in the schema but never populated by current
	// flows; no referential integrity is enforced over it.
	MedicineIDs []uint `gorm:"serializer:json"`

	CreatedAt time.Time
}
