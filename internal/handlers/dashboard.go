package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vendormax/apiserver/internal/services"
)

// DashboardHandler provides the dashboard summary endpoint.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler constructs a handler with the provided service.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardRouter registers the dashboard route on the given router.
func DashboardRouter(r chi.Router, dashboardService *services.DashboardService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewDashboardHandler(dashboardService)

	r.Use(authMiddleware)
	r.Get("/", handler.Summary)
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching dashboard data")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
