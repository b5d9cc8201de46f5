package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Handler handles HTTP requests for the user directory
type Handler struct {
	directory UserDirectory
}

// NewHandler creates a new directory handler
func NewHandler(directory UserDirectory) *Handler {
	return &Handler{directory: directory}
}

// RegisterRoutes registers the directory routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/directory/active-users", h.ActiveUsers)
}

// ActiveUsers returns the total number of registered end users
func (h *Handler) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	count, err := CountUsers(r.Context(), h.directory)
	if err != nil {
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, map[string]string{"message": "Failed to reach user directory"})
		return
	}
	render.JSON(w, r, map[string]int{"count": count})
}
