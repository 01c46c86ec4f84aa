package handler

import (
	"net/http"
	"time"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetDashboardStats handles the dashboard summary
// @Summary Get dashboard statistics
// @Tags Stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /stats/dashboard [get]
func (h *StatsHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetDashboardStats(r.Context(), time.Now())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
