// Package dto defines data transfer objects for the medicines HTTP API.
package dto

import (
	"time"

	"medtrack_backend/internal/feature/medicines/domain/entity"
)

// DateLayout is the wire format for expiry dates.
const DateLayout = "2006-01-02"

// CreateMedicineRequest is the payload for POST /api/medicines.
type CreateMedicineRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Type        string `json:"type" binding:"required,oneof=tablet capsule syrup injection cream drops inhaler"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	ExpiryDate  string `json:"expiryDate" binding:"required"`
	BatchNumber string `json:"batchNumber" binding:"omitempty,max=100"`
	Barcode     string `json:"barcode" binding:"omitempty,max=100"`
	Notes       string `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateMedicineRequest is the payload for PUT /api/medicines/:id.
// Nil fields are left untouched; a client-supplied status is ignored
// because status is always derived from the expiry date.
type UpdateMedicineRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Type        *string `json:"type" binding:"omitempty,oneof=tablet capsule syrup injection cream drops inhaler"`
	Quantity    *int    `json:"quantity" binding:"omitempty,gt=0"`
	ExpiryDate  *string `json:"expiryDate"`
	BatchNumber *string `json:"batchNumber" binding:"omitempty,max=100"`
	Barcode     *string `json:"barcode" binding:"omitempty,max=100"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

// MedicineResponse is the public representation of a medicine.
type MedicineResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  string    `json:"expiryDate"`
	BatchNumber string    `json:"batchNumber,omitempty"`
	Barcode     string    `json:"barcode,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MedicineResponseFrom converts a domain entity to its API representation.
func MedicineResponseFrom(m *entity.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		Quantity:    m.Quantity,
		ExpiryDate:  m.ExpiryDate.Format(DateLayout),
		BatchNumber: m.BatchNumber,
		Barcode:     m.Barcode,
		Notes:       m.Notes,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
