// Package adapters provides repository implementations for the medicines feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"medtrack_backend/internal/feature/medicines/domain/entity"
	"medtrack_backend/internal/feature/medicines/usecase"
)

// medicinePostgres is a GORM-backed implementation of the MedicineRepository interface.
type medicinePostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure medicinePostgres implements MedicineRepository.
var _ usecase.MedicineRepository = (*medicinePostgres)(nil)

// NewMedicineRepository creates a new medicine repository on the given DB connection.
func NewMedicineRepository(db *gorm.DB) *medicinePostgres {
	return &medicinePostgres{db: db}
}

// List returns all medicines ordered by creation time.
func (r *medicinePostgres) List(ctx context.Context) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// FindByID retrieves a medicine by ID.
// It returns usecase.ErrMedicineNotFound if no such row exists.
func (r *medicinePostgres) FindByID(ctx context.Context, id uint) (*entity.Medicine, error) {
	var m entity.Medicine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMedicineNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a medicine. The database assigns ID and CreatedAt atomically,
// so concurrent creates cannot produce duplicate IDs.
func (r *medicinePostgres) Create(ctx context.Context, m *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update persists all fields of an existing medicine.
func (r *medicinePostgres) Update(ctx context.Context, m *entity.Medicine) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Medicine{}).
		Where("id = ?", m.ID).
		Select("name", "type", "quantity", "expiry_date", "batch_number", "barcode", "notes", "status").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrMedicineNotFound
	}
	return nil
}

// Delete removes a medicine by ID.
// It returns usecase.ErrMedicineNotFound if no row was deleted.
func (r *medicinePostgres) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Medicine{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrMedicineNotFound
	}
	return nil
}
