// Package entity defines the domain models for the medicines feature.
package entity

import (
	"math"
	"time"
)

// Status is the expiry-derived lifecycle classification of a medicine.
type Status string

const (
	// StatusGood means the medicine expires more than 7 days from now.
	StatusGood Status = "good"

	// StatusWarning means the medicine expires within the next 7 days (today included).
	StatusWarning Status = "warning"

	// StatusExpired means the expiry date has already passed.
	StatusExpired Status = "expired"
)

// warningWindowDays is the number of days before expiry at which a medicine
// is flagged as expiring soon.
const warningWindowDays = 7

// MedicineType enumerates the allowed medicine categories.
// Kept in one place so DTO validation and seed data stay in sync.
var MedicineTypes = []string{"tablet", "capsule", "syrup", "injection", "cream", "drops", "inhaler"}

// Medicine represents a tracked medicine in the inventory.
// Status is always derived from ExpiryDate, never trusted from client input.
type Medicine struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	Type        string    `gorm:"size:50;not null"`
	Quantity    int       `gorm:"not null"`
	ExpiryDate  time.Time `gorm:"not null"`
	BatchNumber string    `gorm:"size:100"`
	Barcode     string    `gorm:"size:100"`
	Notes       string    `gorm:"size:1000"`
	Status      Status    `gorm:"size:20;not null;default:good"`
	CreatedAt   time.Time
}

// DaysUntilExpiry returns the number of whole days from now until expiry.
// Both instants are normalized to their UTC calendar day before subtracting,
// matching the UTC frame expiry dates are parsed in: a medicine expiring
// today counts as 0 days regardless of the time of day or the server's zone.
func DaysUntilExpiry(expiry, now time.Time) int {
	e := midnightUTC(expiry)
	n := midnightUTC(now)
	return int(math.Ceil(e.Sub(n).Hours() / 24))
}

// Classify derives the expiry status of a medicine from its expiry date.
// It is pure: same inputs always yield the same status, and every date maps
// to exactly one of good/warning/expired.
func Classify(expiry, now time.Time) Status {
	days := DaysUntilExpiry(expiry, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= warningWindowDays:
		return StatusWarning
	default:
		return StatusGood
	}
}

// Reclassify recomputes the status from the expiry date. The stored status is
// only a cache hint: a medicine persisted as "good" silently becomes
// "expired" with no write to trigger recomputation, so reads go through here.
func (m *Medicine) Reclassify(now time.Time) {
	m.Status = Classify(m.ExpiryDate, now)
}

func midnightUTC(t time.Time) time.Time {
	u := t.In(time.UTC)
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
