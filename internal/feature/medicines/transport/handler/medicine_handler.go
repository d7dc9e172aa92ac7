// Package handler provides HTTP handlers for the medicines feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack_backend/internal/api"
	"medtrack_backend/internal/feature/medicines/domain/entity"
	"medtrack_backend/internal/feature/medicines/transport/http/dto"
	"medtrack_backend/internal/feature/medicines/usecase"
)

// MedicineUsecase defines the medicine operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MedicineUsecase interface {
	List(ctx context.Context) ([]entity.Medicine, error)
	Get(ctx context.Context, id uint) (*entity.Medicine, error)
	Create(ctx context.Context, in usecase.CreateMedicineInput) (*entity.Medicine, error)
	Update(ctx context.Context, id uint, in usecase.UpdateMedicineInput) (*entity.Medicine, error)
	Delete(ctx context.Context, id uint) error
}

// MedicineHandler handles HTTP requests for medicine inventory operations.
type MedicineHandler struct {
	uc MedicineUsecase
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(uc MedicineUsecase) *MedicineHandler {
	return &MedicineHandler{uc: uc}
}

// List handles GET /api/medicines.
func (h *MedicineHandler) List(c *gin.Context) {
	medicines, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list medicines", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch medicines"})
		return
	}
	out := make([]dto.MedicineResponse, 0, len(medicines))
	for i := range medicines {
		out = append(out, dto.MedicineResponseFrom(&medicines[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/medicines/:id.
func (h *MedicineHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "medicine not found"})
			return
		}
		slog.Error("failed to fetch medicine", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch medicine"})
		return
	}
	c.JSON(http.StatusOK, dto.MedicineResponseFrom(m))
}

// Create handles POST /api/medicines.
func (h *MedicineHandler) Create(c *gin.Context) {
	var req dto.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("medicine validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}
	expiry, err := time.Parse(dto.DateLayout, req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:  usecase.ErrInvalidDate.Error(),
			Fields: map[string]string{"expiryDate": "must be a date in YYYY-MM-DD format"},
		})
		return
	}

	m, err := h.uc.Create(c.Request.Context(), usecase.CreateMedicineInput{
		Name:        req.Name,
		Type:        req.Type,
		Quantity:    req.Quantity,
		ExpiryDate:  expiry,
		BatchNumber: req.BatchNumber,
		Barcode:     req.Barcode,
		Notes:       req.Notes,
	})
	if err != nil {
		slog.Error("failed to create medicine", "name", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create medicine"})
		return
	}
	slog.Info("medicine created", "id", m.ID, "name", m.Name, "status", m.Status)
	c.JSON(http.StatusCreated, dto.MedicineResponseFrom(m))
}

// Update handles PUT /api/medicines/:id.
func (h *MedicineHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("medicine validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}

	in := usecase.UpdateMedicineInput{
		Name:        req.Name,
		Type:        req.Type,
		Quantity:    req.Quantity,
		BatchNumber: req.BatchNumber,
		Barcode:     req.Barcode,
		Notes:       req.Notes,
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse(dto.DateLayout, *req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error:  usecase.ErrInvalidDate.Error(),
				Fields: map[string]string{"expiryDate": "must be a date in YYYY-MM-DD format"},
			})
			return
		}
		in.ExpiryDate = &expiry
	}

	m, err := h.uc.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "medicine not found"})
			return
		}
		slog.Error("failed to update medicine", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update medicine"})
		return
	}
	c.JSON(http.StatusOK, dto.MedicineResponseFrom(m))
}

// Delete handles DELETE /api/medicines/:id.
func (h *MedicineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "medicine not found"})
			return
		}
		slog.Error("failed to delete medicine", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete medicine"})
		return
	}
	slog.Info("medicine deleted", "id", id)
	c.Status(http.StatusNoContent)
}

// parseID extracts the numeric :id path parameter, responding 404 on garbage.
// A non-numeric id can never reference an existing row.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "medicine not found"})
		return 0, false
	}
	return uint(id), true
}
