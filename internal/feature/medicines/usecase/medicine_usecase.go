package usecase

import (
	"context"
	"time"

	"medtrack_backend/internal/feature/medicines/domain/entity"
)

// MedicineRepository abstracts the persistence layer for medicines.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MedicineRepository interface {
	// List returns all medicines.
	List(ctx context.Context) ([]entity.Medicine, error)

	// FindByID retrieves a medicine by ID.
	// It returns ErrMedicineNotFound if no such medicine exists.
	FindByID(ctx context.Context, id uint) (*entity.Medicine, error)

	// Create persists a new medicine and assigns its ID and CreatedAt.
	Create(ctx context.Context, m *entity.Medicine) error

	// Update persists all fields of an existing medicine.
	Update(ctx context.Context, m *entity.Medicine) error

	// Delete removes a medicine by ID.
	// It returns ErrMedicineNotFound if no such medicine exists.
	Delete(ctx context.Context, id uint) error
}

// CreateMedicineInput carries the validated fields for a new medicine.
type CreateMedicineInput struct {
	Name        string
	Type        string
	Quantity    int
	ExpiryDate  time.Time
	BatchNumber string
	Barcode     string
	Notes       string
}

// UpdateMedicineInput carries a partial update; nil fields are left untouched.
type UpdateMedicineInput struct {
	Name        *string
	Type        *string
	Quantity    *int
	ExpiryDate  *time.Time
	BatchNumber *string
	Barcode     *string
	Notes       *string
}

// MedicineUsecase provides business logic for medicine operations.
// Every read reclassifies the expiry status so the stored value is only a
// cache hint and never goes stale between writes.
type MedicineUsecase struct {
	repo MedicineRepository
	now  func() time.Time
}

// NewMedicineUsecase creates a new MedicineUsecase with the given repository.
func NewMedicineUsecase(repo MedicineRepository) *MedicineUsecase {
	return &MedicineUsecase{repo: repo, now: time.Now}
}

// List returns all medicines with freshly derived statuses.
func (u *MedicineUsecase) List(ctx context.Context) ([]entity.Medicine, error) {
	medicines, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for i := range medicines {
		medicines[i].Reclassify(now)
	}
	return medicines, nil
}

// Get returns a single medicine with a freshly derived status.
func (u *MedicineUsecase) Get(ctx context.Context, id uint) (*entity.Medicine, error) {
	m, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Reclassify(u.now())
	return m, nil
}

// Create persists a new medicine. The status is derived from the expiry date;
// client-supplied status values are never trusted.
func (u *MedicineUsecase) Create(ctx context.Context, in CreateMedicineInput) (*entity.Medicine, error) {
	m := &entity.Medicine{
		Name:        in.Name,
		Type:        in.Type,
		Quantity:    in.Quantity,
		ExpiryDate:  in.ExpiryDate,
		BatchNumber: in.BatchNumber,
		Barcode:     in.Barcode,
		Notes:       in.Notes,
	}
	m.Reclassify(u.now())
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update applies a partial update and recomputes the status before persisting.
func (u *MedicineUsecase) Update(ctx context.Context, id uint, in UpdateMedicineInput) (*entity.Medicine, error) {
	m, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Type != nil {
		m.Type = *in.Type
	}
	if in.Quantity != nil {
		m.Quantity = *in.Quantity
	}
	if in.ExpiryDate != nil {
		m.ExpiryDate = *in.ExpiryDate
	}
	if in.BatchNumber != nil {
		m.BatchNumber = *in.BatchNumber
	}
	if in.Barcode != nil {
		m.Barcode = *in.Barcode
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}

	m.Reclassify(u.now())
	if err := u.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a medicine by ID.
func (u *MedicineUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
