package travelpackage

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the package catalog
type Handler struct {
	service *PackageService
}

// NewHandler creates a new package handler
func NewHandler(service *PackageService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes for both scopes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/packages", func(r chi.Router) {
		r.Get("/", h.list(ScopeInternational))
		r.Post("/", h.create(ScopeInternational))
		r.Put("/{id}", h.update(ScopeInternational))
		r.Delete("/{id}", h.delete(ScopeInternational))
		r.Post("/{id}/seats/decrement", h.decrementSeats(ScopeInternational))
		r.Post("/photos", h.UploadPhoto)
	})
	r.Route("/local-packages", func(r chi.Router) {
		r.Get("/", h.list(ScopeLocal))
		r.Post("/", h.create(ScopeLocal))
		r.Put("/{id}", h.update(ScopeLocal))
		r.Delete("/{id}", h.delete(ScopeLocal))
		r.Post("/{id}/seats/decrement", h.decrementSeats(ScopeLocal))
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) list(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := h.service.ListPackages(r.Context(), scope)
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, messageResponse{Message: "Failed to list packages"})
			return
		}
		if packages == nil {
			packages = []TravelPackage{}
		}
		render.JSON(w, r, packages)
	}
}

func (h *Handler) create(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params PackageParams
		if err := render.DecodeJSON(r.Body, &params); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Invalid request body"})
			return
		}

		id, err := h.service.CreatePackage(r.Context(), scope, params)
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, messageResponse{Message: err.Error()})
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]string{"id": id.String()})
	}
}

func (h *Handler) update(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Invalid package ID"})
			return
		}

		var params PackageParams
		if err := render.DecodeJSON(r.Body, &params); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Invalid request body"})
			return
		}

		if err := h.service.UpdatePackage(r.Context(), scope, id, params); err != nil {
			renderPackageError(w, r, err)
			return
		}

		render.JSON(w, r, messageResponse{Message: "Package updated"})
	}
}

func (h *Handler) delete(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Invalid package ID"})
			return
		}

		if err := h.service.DeletePackage(r.Context(), scope, id); err != nil {
			renderPackageError(w, r, err)
			return
		}

		render.JSON(w, r, messageResponse{Message: "Package deleted"})
	}
}

func (h *Handler) decrementSeats(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Invalid package ID"})
			return
		}

		var req struct {
			Passengers int32 `json:"passengers"`
		}
		if err := render.DecodeJSON(r.Body, &req); err != nil || req.Passengers <= 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, messageResponse{Message: "Missing parameters"})
			return
		}

		newAvailable, err := h.service.DecrementAvailableSeats(r.Context(), scope, id, req.Passengers)
		if err != nil {
			renderPackageError(w, r, err)
			return
		}

		render.JSON(w, r, map[string]int32{"new_available": newAvailable})
	}
}

// UploadPhoto accepts a base64-encoded photo, mirroring the desktop
// client's upload payload, and returns its public URL.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileBase64  string `json:"file_base64"`
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid request body"})
		return
	}

	// Clients may send a data URI; strip the prefix.
	encoded := req.FileBase64
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid file encoding"})
		return
	}

	publicURL, err := h.service.UploadPhoto(r.Context(), req.FileName, data, req.ContentType)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: err.Error()})
		return
	}

	render.JSON(w, r, map[string]string{"public_url": publicURL})
}

func renderPackageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrPackageNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Package not found"})
	case errors.Is(err, ErrInvalidScope):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid package scope"})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal error"})
	}
}
