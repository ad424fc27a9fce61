package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	u, tokens, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			response.Conflict(w, "Email already in use")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, &AuthResponse{
		User:   user.ResponseFromEntity(u),
		Tokens: tokens,
	})
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	u, tokens, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrAccountDeactivated):
			response.Forbidden(w, "Your account has been deactivated")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, &AuthResponse{
		User:   user.ResponseFromEntity(u),
		Tokens: tokens,
	})
}

// Refresh handles POST /auth/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	tokens, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRefreshToken), errors.Is(err, user.ErrUserNotFound):
			response.Unauthorized(w, "Invalid refresh token")
		case errors.Is(err, ErrAccountDeactivated):
			response.Forbidden(w, "Your account has been deactivated")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, tokens)
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	u, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, user.ResponseFromEntity(u))
}
