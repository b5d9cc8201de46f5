package login

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jinzhu/copier"

	"github.com/wandertours/travel-admin/pkg/twofa"
)

// Handler handles HTTP requests for the authentication flows
type Handler struct {
	loginService *LoginService
}

// NewHandler creates a new login handler
func NewHandler(loginService *LoginService) *Handler {
	return &Handler{loginService: loginService}
}

// RegisterRoutes registers the authentication routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/2fa/send", h.SendCode)
		r.Post("/2fa/verify", h.VerifyCode)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type twofaRequest struct {
	Username    string `json:"username"`
	CodeAttempt string `json:"code_attempt,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login handles the credential check and issues a two-factor challenge
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid request body"})
		return
	}

	result, err := h.loginService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		renderAuthError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// Register creates a new admin and issues a two-factor challenge
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Invalid request body"})
		return
	}

	params := RegisterParams{}
	copier.Copy(&params, &req)

	admin, err := h.loginService.Register(r.Context(), params)
	if err != nil {
		renderAuthError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, LoginResult{
		Username:      admin.Username,
		TwofaRequired: true,
		TwofaMethod:   admin.TwofaMethod,
	})
}

// SendCode issues a fresh challenge, overwriting any outstanding one
func (h *Handler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req twofaRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Username == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Username missing"})
		return
	}

	if err := h.loginService.ResendCode(r.Context(), req.Username); err != nil {
		renderAuthError(w, r, err)
		return
	}

	render.JSON(w, r, messageResponse{Message: "Code sent"})
}

// VerifyCode completes a pending two-factor flow
func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req twofaRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Username == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "Username missing"})
		return
	}

	if err := h.loginService.CompleteTwoFa(r.Context(), req.Username, req.CodeAttempt); err != nil {
		renderAuthError(w, r, err)
		return
	}

	render.JSON(w, r, messageResponse{Message: "Verified"})
}

func renderAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, messageResponse{Message: "Invalid username or password"})
	case errors.Is(err, ErrUsernameTaken):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, messageResponse{Message: "Username already taken"})
	case errors.Is(err, twofa.ErrPrincipalNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "User not found"})
	case errors.Is(err, twofa.ErrNoActiveChallenge):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, messageResponse{Message: "No active code"})
	case errors.Is(err, twofa.ErrChallengeExpired):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, messageResponse{Message: "Code expired"})
	case errors.Is(err, twofa.ErrInvalidPasscode):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, messageResponse{Message: "Invalid code"})
	case errors.Is(err, twofa.ErrNotificationFailed):
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, messageResponse{Message: "Failed to deliver code"})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal error"})
	}
}
