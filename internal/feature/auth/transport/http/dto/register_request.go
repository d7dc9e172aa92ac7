// Package dto defines data transfer objects for the auth HTTP API.
package dto

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"omitempty,max=255"`
	LastName  string `json:"lastName" binding:"omitempty,max=255"`
}
