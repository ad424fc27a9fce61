package artist

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/validator"
)

// Handler handles artist HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates artist handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /artists
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := ListFilter{
		Q:    q.Get("q"),
		City: q.Get("city"),
	}
	filter.Style = q.Get("style")
	if raw := q.Get("studioId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid studioId")
			return
		}
		filter.StudioID = id
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Size, _ = strconv.Atoi(q.Get("size"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = defaultPageSize
	}
	if filter.Size > maxPageSize {
		filter.Size = maxPageSize
	}

	items, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*ArtistResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ResponseFromListItem(item))
	}
	response.WithMeta(w, out, response.Meta{Total: total, Page: filter.Page, Size: filter.Size})
}

// GetByID handles GET /artists/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid artist ID")
		return
	}

	detail, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			response.NotFound(w, "Artist not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ResponseFromDetail(detail))
}

// Create handles POST /artists
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	a, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownStyle):
			response.ValidationError(w, map[string]string{"styles": "contains an unknown style slug"})
		case errors.Is(err, ErrStudioNotFound):
			response.NotFound(w, "Studio not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ResponseFromEntity(a))
}
