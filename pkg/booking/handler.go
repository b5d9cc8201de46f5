package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	service *BookingService
}

// NewHandler creates a new booking handler
func NewHandler(service *BookingService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the booking routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.ListBookings)
		r.Put("/{id}/status", h.UpdateStatus)
		r.Put("/{id}/travel-date", h.UpdateTravelDate)
	})
	r.Post("/sms", h.SendSMS)
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListBookings returns all bookings with destinations resolved
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListBookings(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Failed to list bookings"})
		return
	}
	if views == nil {
		views = []BookingView{}
	}
	render.JSON(w, r, views)
}

// UpdateStatus sets a booking's status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid booking ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Status == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Status is required"})
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		renderBookingError(w, r, err)
		return
	}

	render.JSON(w, r, messageResponse{Message: "Status updated"})
}

// UpdateTravelDate sets a booking's travel date
func (h *Handler) UpdateTravelDate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid booking ID"})
		return
	}

	var req struct {
		TravelDate time.Time `json:"travel_date"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.TravelDate.IsZero() {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Travel date is required"})
		return
	}

	if err := h.service.UpdateTravelDate(r.Context(), id, req.TravelDate); err != nil {
		renderBookingError(w, r, err)
		return
	}

	render.JSON(w, r, messageResponse{Message: "Travel date updated"})
}

// SendSMS delivers an ad-hoc SMS to a recipient
func (h *Handler) SendSMS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipient string `json:"recipient"`
		Message   string `json:"message"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Recipient == "" || req.Message == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Recipient and message required"})
		return
	}

	if err := h.service.SendSMS(r.Context(), req.Recipient, req.Message); err != nil {
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, messageResponse{Message: "Failed to send SMS"})
		return
	}

	render.JSON(w, r, messageResponse{Message: "SMS sent"})
}

func renderBookingError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrBookingNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Booking not found"})
		return
	}
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, messageResponse{Message: "Internal error"})
}
