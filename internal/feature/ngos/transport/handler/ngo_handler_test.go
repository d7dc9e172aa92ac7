package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "medtrack_backend/internal/feature/auth/domain/entity"
	"medtrack_backend/internal/feature/auth/transport/middleware"
	"medtrack_backend/internal/feature/ngos/domain/entity"
	"medtrack_backend/internal/feature/ngos/usecase"
)

// mockNGOUsecase is a mock implementation of the NGOUsecase interface.
type mockNGOUsecase struct {
	ListFunc   func(ctx context.Context, includeInactive bool) ([]entity.NGO, error)
	CreateFunc func(ctx context.Context, in usecase.CreateNGOInput) (*entity.NGO, error)
}

func (m *mockNGOUsecase) List(ctx context.Context, includeInactive bool) ([]entity.NGO, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *mockNGOUsecase) Create(ctx context.Context, in usecase.CreateNGOInput) (*entity.NGO, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return nil, errors.New("unexpected call")
}

// newTestRouter wires the handler behind a stub that injects the given
// principal, mirroring what SessionRequired does in production.
func newTestRouter(uc NGOUsecase, user *authentity.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNGOHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.ContextUser, user)
		}
		c.Next()
	})
	r.GET("/api/ngos", h.List)
	r.POST("/api/ngos", h.Create)
	return r
}

func TestNGOHandler_List(t *testing.T) {
	t.Parallel()

	adminUser := &authentity.User{ID: "u-1", Username: "admin", Role: authentity.RoleAdmin, Active: true}
	regularUser := &authentity.User{ID: "u-2", Username: "donor", Role: authentity.RoleUser, Active: true}

	tests := []struct {
		name                string
		user                *authentity.User
		wantIncludeInactive bool
	}{
		{
			name:                "admin sees inactive partners",
			user:                adminUser,
			wantIncludeInactive: true,
		},
		{
			name:                "regular user sees active partners only",
			user:                regularUser,
			wantIncludeInactive: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotIncludeInactive bool
			uc := &mockNGOUsecase{
				ListFunc: func(ctx context.Context, includeInactive bool) ([]entity.NGO, error) {
					gotIncludeInactive = includeInactive
					return []entity.NGO{{ID: 1, Name: "Hope Foundation", Active: true}}, nil
				},
			}
			router := newTestRouter(uc, tt.user)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/ngos", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantIncludeInactive, gotIncludeInactive)

			var got []entity.NGO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Len(t, got, 1)
			assert.Equal(t, "Hope Foundation", got[0].Name)
		})
	}

	t.Run("repository error returns 500", func(t *testing.T) {
		t.Parallel()

		uc := &mockNGOUsecase{
			ListFunc: func(ctx context.Context, includeInactive bool) ([]entity.NGO, error) {
				return nil, errors.New("db down")
			},
		}
		router := newTestRouter(uc, regularUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ngos", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNGOHandler_Create(t *testing.T) {
	t.Parallel()

	adminUser := &authentity.User{ID: "u-1", Username: "admin", Role: authentity.RoleAdmin, Active: true}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var gotInput usecase.CreateNGOInput
		uc := &mockNGOUsecase{
			CreateFunc: func(ctx context.Context, in usecase.CreateNGOInput) (*entity.NGO, error) {
				gotInput = in
				return &entity.NGO{ID: 5, Name: in.Name, ContactEmail: in.ContactEmail, Active: in.Active}, nil
			},
		}
		router := newTestRouter(uc, adminUser)

		body, _ := json.Marshal(map[string]any{
			"name":         "New Hope",
			"contactEmail": "contact@newhope.org",
			"contactPhone": "+1-555-0100",
			"address":      "12 Relief Street",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ngos", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "New Hope", gotInput.Name)
		assert.True(t, gotInput.Active, "active should default to true")
	})

	t.Run("explicit inactive", func(t *testing.T) {
		t.Parallel()

		var gotInput usecase.CreateNGOInput
		uc := &mockNGOUsecase{
			CreateFunc: func(ctx context.Context, in usecase.CreateNGOInput) (*entity.NGO, error) {
				gotInput = in
				return &entity.NGO{ID: 6, Name: in.Name, Active: in.Active}, nil
			},
		}
		router := newTestRouter(uc, adminUser)

		body, _ := json.Marshal(map[string]any{
			"name":         "Dormant Partner",
			"contactEmail": "ops@dormant.org",
			"contactPhone": "+1-555-0101",
			"address":      "99 Idle Road",
			"active":       false,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ngos", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.False(t, gotInput.Active)
	})

	t.Run("validation errors return itemized fields", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(&mockNGOUsecase{}, adminUser)

		body, _ := json.Marshal(map[string]any{
			"name":         "",
			"contactEmail": "not-an-email",
			"contactPhone": "+1-555-0100",
			"address":      "12 Relief Street",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ngos", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "name")
		assert.Contains(t, resp.Fields, "contactEmail")
	})
}
