package http

import (
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/domain/dashboard"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	DailyStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// DailyStats implements DashboardHandler.
func (h *dashboardHandlerImpl) DailyStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.dashboardService.DailyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
