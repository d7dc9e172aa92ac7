// Package handler provides HTTP handlers for the donations feature.
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
	"medtrack_backend/internal/feature/donations/domain/entity"
	"medtrack_backend/internal/feature/donations/transport/http/dto"
	"medtrack_backend/internal/feature/donations/usecase"
)

// DonationUsecase defines the donation operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DonationUsecase interface {
	List(ctx context.Context) ([]entity.Donation, error)
	Get(ctx context.Context, id uint) (*entity.Donation, error)
	Create(ctx context.Context, in usecase.CreateDonationInput) (*entity.Donation, error)
	Update(ctx context.Context, id uint, in usecase.UpdateDonationInput) (*entity.Donation, error)
}

// DonationHandler handles HTTP requests for donation pickup requests.
type DonationHandler struct {
	uc DonationUsecase
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(uc DonationUsecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

// List handles GET /api/donations.
func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list donations", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch donations"})
		return
	}
	out := make([]dto.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, dto.DonationResponseFrom(&donations[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/donations/:id.
func (h *DonationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "donation not found"})
			return
		}
		slog.Error("failed to fetch donation", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch donation"})
		return
	}
	c.JSON(http.StatusOK, dto.DonationResponseFrom(d))
}

// Create handles POST /api/donations.
func (h *DonationHandler) Create(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("donation validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}
	pickup, err := time.Parse(dto.DateLayout, req.PickupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:  "invalid pickup date",
			Fields: map[string]string{"pickupDate": "must be a date in YYYY-MM-DD format"},
		})
		return
	}

	d, err := h.uc.Create(c.Request.Context(), usecase.CreateDonationInput{
		NGOName:             req.NGOName,
		PickupDate:          pickup,
		PickupTime:          req.PickupTime,
		Address:             req.Address,
		ContactNumber:       req.ContactNumber,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		slog.Error("failed to create donation", "ngo", req.NGOName, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create donation"})
		return
	}
	slog.Info("donation created", "id", d.ID, "ngo", d.NGOName)
	c.JSON(http.StatusCreated, dto.DonationResponseFrom(d))
}

// Update handles PUT /api/donations/:id. Status changes run through the
// donation state machine; illegal transitions come back as 400.
func (h *DonationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("donation validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}

	in := usecase.UpdateDonationInput{
		NGOName:             req.NGOName,
		PickupTime:          req.PickupTime,
		Address:             req.Address,
		ContactNumber:       req.ContactNumber,
		SpecialInstructions: req.SpecialInstructions,
	}
	if req.PickupDate != nil {
		pickup, err := time.Parse(dto.DateLayout, *req.PickupDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error:  "invalid pickup date",
				Fields: map[string]string{"pickupDate": "must be a date in YYYY-MM-DD format"},
			})
			return
		}
		in.PickupDate = &pickup
	}
	if req.Status != nil {
		status := entity.DonationStatus(*req.Status)
		in.Status = &status
	}

	d, err := h.uc.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDonationNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "donation not found"})
		case errors.Is(err, usecase.ErrInvalidTransition):
			slog.Warn("rejected donation status change", "id", id, "error", err)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to update donation", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update donation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.DonationResponseFrom(d))
}

// parseID extracts the numeric :id path parameter, responding 404 on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "donation not found"})
		return 0, false
	}
	return uint(id), true
}
