// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role controls access to donation and NGO management features.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"

	// RoleAdmin may confirm, cancel and complete donations and manage NGOs.
	RoleAdmin Role = "admin"
)

// User represents a registered user in the system.
// Password holds a bcrypt hash and is never serialized outward.
type User struct {
	// ID is an opaque string identifier (UUID), assigned at registration.
	ID string `gorm:"primaryKey;size:36"`

	// Username is the login name. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`

	// Role is either "user" or "admin".
	Role Role `gorm:"size:20;not null;default:user"`

	// Active is false for disabled accounts, which cannot authenticate.
	Active bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
