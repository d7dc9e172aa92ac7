// Package adapters provides repository implementations for the ngos feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"medtrack_backend/internal/feature/ngos/domain/entity"
	"medtrack_backend/internal/feature/ngos/usecase"
)

// ngoPostgres is a GORM-backed implementation of the NGORepository interface.
type ngoPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure ngoPostgres implements NGORepository.
var _ usecase.NGORepository = (*ngoPostgres)(nil)

// NewNGORepository creates a new NGO repository on the given DB connection.
func NewNGORepository(db *gorm.DB) *ngoPostgres {
	return &ngoPostgres{db: db}
}

// List returns NGOs ordered by name, optionally filtered to active ones.
func (r *ngoPostgres) List(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var ngos []entity.NGO
	if err := q.Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

// FindByID retrieves an NGO by ID.
// It returns usecase.ErrNGONotFound if no such row exists.
func (r *ngoPostgres) FindByID(ctx context.Context, id uint) (*entity.NGO, error) {
	var n entity.NGO
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNGONotFound
		}
		return nil, err
	}
	return &n, nil
}

// Create inserts an NGO.
func (r *ngoPostgres) Create(ctx context.Context, n *entity.NGO) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// SeedDefaults inserts the default partner NGOs when the table is empty,
// so a fresh deployment has referenceable pickup partners.
func (r *ngoPostgres) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.NGO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []entity.NGO{
		{Name: "Hope Foundation", ContactEmail: "contact@hopefoundation.org", ContactPhone: "+1-555-0101", Address: "123 Hope Street, Medical District", Active: true},
		{Name: "Care NGO", ContactEmail: "info@carengo.org", ContactPhone: "+1-555-0102", Address: "456 Care Avenue, Health Zone", Active: true},
		{Name: "Healing Hands", ContactEmail: "help@healinghands.org", ContactPhone: "+1-555-0103", Address: "789 Healing Boulevard, Wellness Center", Active: true},
		{Name: "Wellness Trust", ContactEmail: "support@wellnesstrust.org", ContactPhone: "+1-555-0104", Address: "321 Wellness Road, Community Health", Active: true},
	}
	return r.db.WithContext(ctx).Create(&defaults).Error
}
