package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Handler handles HTTP requests for dashboard stats
type Handler struct {
	service *DashboardService
}

// NewHandler creates a new dashboard handler
func NewHandler(service *DashboardService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.GetStats)
}

// GetStats returns the aggregated dashboard figures
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"message": "Failed to compute stats"})
		return
	}
	render.JSON(w, r, stats)
}
