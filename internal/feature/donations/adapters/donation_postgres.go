// Package adapters provides repository implementations for the donations feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"medtrack_backend/internal/feature/donations/domain/entity"
	"medtrack_backend/internal/feature/donations/usecase"
)

// donationPostgres is a GORM-backed implementation of the DonationRepository interface.
type donationPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure donationPostgres implements DonationRepository.
var _ usecase.DonationRepository = (*donationPostgres)(nil)

// NewDonationRepository creates a new donation repository on the given DB connection.
func NewDonationRepository(db *gorm.DB) *donationPostgres {
	return &donationPostgres{db: db}
}

// List returns all donations, newest first.
func (r *donationPostgres) List(ctx context.Context) ([]entity.Donation, error) {
	var donations []entity.Donation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// FindByID retrieves a donation by ID.
// It returns usecase.ErrDonationNotFound if no such row exists.
func (r *donationPostgres) FindByID(ctx context.Context, id uint) (*entity.Donation, error) {
	var d entity.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a donation. The database assigns ID and CreatedAt atomically.
func (r *donationPostgres) Create(ctx context.Context, d *entity.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// Update persists all fields of an existing donation.
func (r *donationPostgres) Update(ctx context.Context, d *entity.Donation) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Donation{}).
		Where("id = ?", d.ID).
		Select("ngo_name", "pickup_date", "pickup_time", "address", "contact_number",
			"special_instructions", "status").
		Updates(d)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrDonationNotFound
	}
	return nil
}
