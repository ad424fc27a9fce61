package style

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/validator"
)

// Handler handles style HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates style handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /styles
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	styles, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	if styles == nil {
		styles = []*Style{}
	}
	response.OK(w, styles)
}

// Create handles POST /styles
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrStyleAlreadyExists) {
			response.Conflict(w, "Style already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, st)
}
