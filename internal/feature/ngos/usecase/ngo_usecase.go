// Package usecase implements the business logic for the ngos feature.
package usecase

import (
	"context"
	"errors"

	"medtrack_backend/internal/feature/ngos/domain/entity"
)

// ErrNGONotFound is returned when no NGO exists with the given ID.
var ErrNGONotFound = errors.New("ngo not found")

// NGORepository abstracts the persistence layer for NGO partner records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NGORepository interface {
	// List returns all NGOs. When activeOnly is true, disabled partners are
	// filtered out.
	List(ctx context.Context, activeOnly bool) ([]entity.NGO, error)

	// FindByID retrieves an NGO by ID.
	// It returns ErrNGONotFound if no such NGO exists.
	FindByID(ctx context.Context, id uint) (*entity.NGO, error)

	// Create persists a new NGO and assigns its ID.
	Create(ctx context.Context, n *entity.NGO) error
}

// CreateNGOInput carries the validated fields for a new NGO partner.
type CreateNGOInput struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
	Active       bool
}

// NGOUsecase provides business logic for NGO partner records.
type NGOUsecase struct {
	repo NGORepository
}

// NewNGOUsecase creates a new NGOUsecase with the given repository.
func NewNGOUsecase(repo NGORepository) *NGOUsecase {
	return &NGOUsecase{repo: repo}
}

// List returns NGO partners. Non-admin callers only see active partners,
// since the donation form must not offer disabled NGOs.
func (u *NGOUsecase) List(ctx context.Context, includeInactive bool) ([]entity.NGO, error) {
	return u.repo.List(ctx, !includeInactive)
}

// Get returns a single NGO.
func (u *NGOUsecase) Get(ctx context.Context, id uint) (*entity.NGO, error) {
	return u.repo.FindByID(ctx, id)
}

// Create persists a new NGO partner.
func (u *NGOUsecase) Create(ctx context.Context, in CreateNGOInput) (*entity.NGO, error) {
	n := &entity.NGO{
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		Active:       in.Active,
	}
	if err := u.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
