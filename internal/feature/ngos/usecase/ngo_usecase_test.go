package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtrack_backend/internal/feature/ngos/domain/entity"
)

type mockNGORepository struct {
	ListFunc     func(ctx context.Context, activeOnly bool) ([]entity.NGO, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.NGO, error)
	CreateFunc   func(ctx context.Context, n *entity.NGO) error
}

func (m *mockNGORepository) List(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockNGORepository) FindByID(ctx context.Context, id uint) (*entity.NGO, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNGONotFound
}

func (m *mockNGORepository) Create(ctx context.Context, n *entity.NGO) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func TestNGOUsecase_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		includeInactive bool
		wantActiveOnly  bool
	}{
		{
			name:            "regular listing filters to active partners",
			includeInactive: false,
			wantActiveOnly:  true,
		},
		{
			name:            "admin listing includes inactive partners",
			includeInactive: true,
			wantActiveOnly:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotActiveOnly bool
			repo := &mockNGORepository{
				ListFunc: func(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
					gotActiveOnly = activeOnly
					return []entity.NGO{{ID: 1, Name: "Hope Foundation", Active: true}}, nil
				},
			}
			uc := NewNGOUsecase(repo)

			ngos, err := uc.List(context.Background(), tt.includeInactive)

			require.NoError(t, err)
			assert.Len(t, ngos, 1)
			assert.Equal(t, tt.wantActiveOnly, gotActiveOnly)
		})
	}
}

func TestNGOUsecase_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := &mockNGORepository{
			CreateFunc: func(ctx context.Context, n *entity.NGO) error {
				n.ID = 7
				return nil
			},
		}
		uc := NewNGOUsecase(repo)

		n, err := uc.Create(context.Background(), CreateNGOInput{
			Name:         "New Hope",
			ContactEmail: "contact@newhope.org",
			ContactPhone: "+1-555-0100",
			Address:      "12 Relief Street",
			Active:       true,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), n.ID)
		assert.Equal(t, "New Hope", n.Name)
		assert.True(t, n.Active)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		repoErr := errors.New("insert failed")
		repo := &mockNGORepository{
			CreateFunc: func(ctx context.Context, n *entity.NGO) error {
				return repoErr
			},
		}
		uc := NewNGOUsecase(repo)

		_, err := uc.Create(context.Background(), CreateNGOInput{Name: "X"})

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestNGOUsecase_Get(t *testing.T) {
	t.Parallel()

	repo := &mockNGORepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.NGO, error) {
			if id == 1 {
				return &entity.NGO{ID: 1, Name: "Hope Foundation"}, nil
			}
			return nil, ErrNGONotFound
		},
	}
	uc := NewNGOUsecase(repo)

	n, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Hope Foundation", n.Name)

	_, err = uc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNGONotFound)
}
