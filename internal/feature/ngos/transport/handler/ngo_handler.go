// Package handler provides HTTP handlers for the ngos feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack_backend/internal/api"
	"medtrack_backend/internal/feature/auth/transport/middleware"
	"medtrack_backend/internal/feature/ngos/domain/entity"
	"medtrack_backend/internal/feature/ngos/usecase"
)

// NGOUsecase defines the NGO operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type NGOUsecase interface {
	List(ctx context.Context, includeInactive bool) ([]entity.NGO, error)
	Create(ctx context.Context, in usecase.CreateNGOInput) (*entity.NGO, error)
}

// CreateNGORequest is the payload for POST /api/ngos.
type CreateNGORequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"required,max=50"`
	Address      string `json:"address" binding:"required,max=500"`
	Active       *bool  `json:"active"`
}

// NGOHandler handles HTTP requests for NGO partner records.
type NGOHandler struct {
	uc NGOUsecase
}

// NewNGOHandler creates a new NGOHandler.
func NewNGOHandler(uc NGOUsecase) *NGOHandler {
	return &NGOHandler{uc: uc}
}

// List handles GET /api/ngos. Admins see every partner; regular users only
// see active ones, since those are the only valid pickup targets.
func (h *NGOHandler) List(c *gin.Context) {
	includeInactive := false
	if user, ok := middleware.CurrentUser(c); ok && user.IsAdmin() {
		includeInactive = true
	}
	ngos, err := h.uc.List(c.Request.Context(), includeInactive)
	if err != nil {
		slog.Error("failed to list ngos", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch NGOs"})
		return
	}
	c.JSON(http.StatusOK, ngos)
}

// Create handles POST /api/ngos (admin only, enforced by middleware).
func (h *NGOHandler) Create(c *gin.Context) {
	var req CreateNGORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("ngo validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	n, err := h.uc.Create(c.Request.Context(), usecase.CreateNGOInput{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Active:       active,
	})
	if err != nil {
		slog.Error("failed to create ngo", "name", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create NGO"})
		return
	}
	slog.Info("ngo created", "id", n.ID, "name", n.Name)
	c.JSON(http.StatusCreated, n)
}
