// Package handler provides HTTP handlers for the statistics feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack_backend/internal/api"
	"medtrack_backend/internal/feature/statistics/usecase"
)

// StatisticsUsecase defines the aggregation operation consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StatisticsUsecase interface {
	Summary(ctx context.Context) (*usecase.Stats, error)
}

// StatisticsHandler handles HTTP requests for the dashboard summary.
type StatisticsHandler struct {
	uc StatisticsUsecase
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(uc StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Summary handles GET /api/statistics.
func (h *StatisticsHandler) Summary(c *gin.Context) {
	stats, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		slog.Error("failed to compute statistics", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
