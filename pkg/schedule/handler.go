package schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for schedules
type Handler struct {
	service *ScheduleService
}

// NewHandler creates a new schedule handler
func NewHandler(service *ScheduleService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the schedule routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/schedules", func(r chi.Router) {
		r.Get("/", h.ListSchedules)
		r.Post("/", h.CreateSchedule)
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListSchedules returns all schedules with passenger and package names
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListSchedules(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Failed to list schedules"})
		return
	}
	if views == nil {
		views = []ScheduleView{}
	}
	render.JSON(w, r, views)
}

// CreateSchedule inserts a schedule for a booking
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID        uuid.UUID  `json:"booking_id"`
		ReferenceID      *uuid.UUID `json:"reference_id"`
		LocalReferenceID *uuid.UUID `json:"local_reference_id"`
		TravelDate       time.Time  `json:"travel_date"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.BookingID == uuid.Nil || req.TravelDate.IsZero() {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Booking and travel date required"})
		return
	}

	s, err := h.service.CreateSchedule(r.Context(), CreateScheduleParams{
		BookingID:        req.BookingID,
		ReferenceID:      req.ReferenceID,
		LocalReferenceID: req.LocalReferenceID,
		TravelDate:       req.TravelDate,
	})
	if err != nil {
		if errors.Is(err, ErrMissingReference) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Package reference required"})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Failed to create schedule"})
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, s)
}
