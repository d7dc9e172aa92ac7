package usecase

import (
	"context"
	"fmt"
	"time"

	"medtrack_backend/internal/feature/donations/domain/entity"
)

// DonationRepository abstracts the persistence layer for donations.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DonationRepository interface {
	// List returns all donations.
	List(ctx context.Context) ([]entity.Donation, error)

	// FindByID retrieves a donation by ID.
	// It returns ErrDonationNotFound if no such donation exists.
	FindByID(ctx context.Context, id uint) (*entity.Donation, error)

	// Create persists a new donation and assigns its ID and CreatedAt.
	Create(ctx context.Context, d *entity.Donation) error

	// Update persists all fields of an existing donation.
	Update(ctx context.Context, d *entity.Donation) error
}

// CreateDonationInput carries the validated fields for a new pickup request.
type CreateDonationInput struct {
	NGOName             string
	PickupDate          time.Time
	PickupTime          string
	Address             string
	ContactNumber       string
	SpecialInstructions string
}

// UpdateDonationInput carries a partial update. A non-nil Status is checked
// against the state machine before persisting; nil leaves the status untouched.
type UpdateDonationInput struct {
	NGOName             *string
	PickupDate          *time.Time
	PickupTime          *string
	Address             *string
	ContactNumber       *string
	SpecialInstructions *string
	Status              *entity.DonationStatus
}

// DonationUsecase provides business logic for donation pickup requests,
// including enforcement of the status state machine.
type DonationUsecase struct {
	repo DonationRepository
}

// NewDonationUsecase creates a new DonationUsecase with the given repository.
func NewDonationUsecase(repo DonationRepository) *DonationUsecase {
	return &DonationUsecase{repo: repo}
}

// List returns all donations.
func (u *DonationUsecase) List(ctx context.Context) ([]entity.Donation, error) {
	return u.repo.List(ctx)
}

// Get returns a single donation.
func (u *DonationUsecase) Get(ctx context.Context, id uint) (*entity.Donation, error) {
	return u.repo.FindByID(ctx, id)
}

// Create persists a new donation. Every donation starts pending regardless of
// any status the client may have supplied.
func (u *DonationUsecase) Create(ctx context.Context, in CreateDonationInput) (*entity.Donation, error) {
	d := &entity.Donation{
		NGOName:             in.NGOName,
		PickupDate:          in.PickupDate,
		PickupTime:          in.PickupTime,
		Address:             in.Address,
		ContactNumber:       in.ContactNumber,
		SpecialInstructions: in.SpecialInstructions,
		Status:              entity.StatusPending,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies a partial update. Status changes must follow the transition
// table: pending may be confirmed or cancelled, confirmed may be completed,
// and terminal states never move again. A same-status update is a no-op.
func (u *DonationUsecase) Update(ctx context.Context, id uint, in UpdateDonationInput) (*entity.Donation, error) {
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && *in.Status != d.Status {
		if !d.Status.CanTransitionTo(*in.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Status, *in.Status)
		}
		d.Status = *in.Status
	}
	if in.NGOName != nil {
		d.NGOName = *in.NGOName
	}
	if in.PickupDate != nil {
		d.PickupDate = *in.PickupDate
	}
	if in.PickupTime != nil {
		d.PickupTime = *in.PickupTime
	}
	if in.Address != nil {
		d.Address = *in.Address
	}
	if in.ContactNumber != nil {
		d.ContactNumber = *in.ContactNumber
	}
	if in.SpecialInstructions != nil {
		d.SpecialInstructions = *in.SpecialInstructions
	}

	if err := u.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
