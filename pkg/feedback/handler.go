package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Handler handles HTTP requests for feedback
type Handler struct {
	repo FeedbackRepository
}

// NewHandler creates a new feedback handler
func NewHandler(repo FeedbackRepository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers the feedback routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/feedback", h.ListFeedback)
}

// ListFeedback returns all feedback entries
func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.ListFeedback(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"message": "Failed to list feedback"})
		return
	}
	if entries == nil {
		entries = []Feedback{}
	}
	render.JSON(w, r, entries)
}
