// Package dto defines data transfer objects for the donations HTTP API.
package dto

import (
	"time"

	"medtrack_backend/internal/feature/donations/domain/entity"
)

// DateLayout is the wire format for pickup dates.
const DateLayout = "2006-01-02"

// CreateDonationRequest is the payload for POST /api/donations.
// Any client-supplied status is ignored; new donations always start pending.
type CreateDonationRequest struct {
	NGOName             string `json:"ngoName" binding:"required,max=255"`
	PickupDate          string `json:"pickupDate" binding:"required"`
	PickupTime          string `json:"pickupTime" binding:"required,oneof='Morning (9 AM - 12 PM)' 'Afternoon (12 PM - 4 PM)' 'Evening (4 PM - 7 PM)'"`
	Address             string `json:"address" binding:"required,max=500"`
	ContactNumber       string `json:"contactNumber" binding:"required,max=50"`
	SpecialInstructions string `json:"specialInstructions" binding:"omitempty,max=1000"`
}

// UpdateDonationRequest is the payload for PUT /api/donations/:id.
type UpdateDonationRequest struct {
	NGOName             *string `json:"ngoName" binding:"omitempty,max=255"`
	PickupDate          *string `json:"pickupDate"`
	PickupTime          *string `json:"pickupTime" binding:"omitempty,oneof='Morning (9 AM - 12 PM)' 'Afternoon (12 PM - 4 PM)' 'Evening (4 PM - 7 PM)'"`
	Address             *string `json:"address" binding:"omitempty,max=500"`
	ContactNumber       *string `json:"contactNumber" binding:"omitempty,max=50"`
	SpecialInstructions *string `json:"specialInstructions" binding:"omitempty,max=1000"`
	Status              *string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
}

// DonationResponse is the public representation of a donation.
type DonationResponse struct {
	ID                  uint      `json:"id"`
	NGOName             string    `json:"ngoName"`
	PickupDate          string    `json:"pickupDate"`
	PickupTime          string    `json:"pickupTime"`
	Address             string    `json:"address"`
	ContactNumber       string    `json:"contactNumber"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	Status              string    `json:"status"`
	MedicineIDs         []uint    `json:"medicineIds,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// DonationResponseFrom converts a domain entity to its API representation.
func DonationResponseFrom(d *entity.Donation) DonationResponse {
	return DonationResponse{
		ID:                  d.ID,
		NGOName:             d.NGOName,
		PickupDate:          d.PickupDate.Format(DateLayout),
		PickupTime:          d.PickupTime,
		Address:             d.Address,
		ContactNumber:       d.ContactNumber,
		SpecialInstructions: d.SpecialInstructions,
		Status:              string(d.Status),
		MedicineIDs:         d.MedicineIDs,
		CreatedAt:           d.CreatedAt,
	}
}
