package blog

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for blog posts
type Handler struct {
	service *BlogService
}

// NewHandler creates a new blog handler
func NewHandler(service *BlogService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the blog routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.ListBlogs)
		r.Post("/", h.CreateBlog)
		r.Delete("/{id}", h.DeleteBlog)
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListBlogs returns all blog posts
func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.ListBlogs(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Failed to list blogs"})
		return
	}
	if blogs == nil {
		blogs = []Blog{}
	}
	render.JSON(w, r, blogs)
}

// CreateBlog accepts a post with base64-encoded media and stores both
func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		FileBase64  string `json:"file_base64"`
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
		MediaType   string `json:"media_type"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid request body"})
		return
	}
	if req.Title == "" || req.FileBase64 == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Title and media required"})
		return
	}

	encoded := req.FileBase64
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}

	media, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid file encoding"})
		return
	}

	id, err := h.service.CreateBlog(r.Context(), CreateBlogMediaParams{
		Title:       req.Title,
		Description: req.Description,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Media:       media,
		MediaType:   req.MediaType,
	})
	if err != nil {
		renderBlogError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"id": id.String()})
}

// DeleteBlog removes a blog post and its media
func (h *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid blog ID"})
		return
	}

	if err := h.service.DeleteBlog(r.Context(), id); err != nil {
		renderBlogError(w, r, err)
		return
	}

	render.JSON(w, r, messageResponse{Message: "Blog deleted"})
}

func renderBlogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Blog not found"})
	case errors.Is(err, ErrInvalidMediaType):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Media type must be image or video"})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal error"})
	}
}
