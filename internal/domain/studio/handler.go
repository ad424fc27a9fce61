package studio

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/validator"
)

// Handler handles studio HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates studio handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /studios
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := SearchFilter{
		Q:     q.Get("q"),
		City:  q.Get("city"),
		State: q.Get("state"),
	}

	studios, err := h.service.Search(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*StudioResponse, 0, len(studios))
	for _, st := range studios {
		out = append(out, ResponseFromEntity(st))
	}
	response.OK(w, out)
}

// GetByID handles GET /studios/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}

	st, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			response.NotFound(w, "Studio not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ResponseFromEntity(st))
}

// CreateMine handles POST /studios/my
func (h *Handler) CreateMine(w http.ResponseWriter, r *http.Request) {
	var req CreateStudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.CreateForOwner(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		if errors.Is(err, ErrOwnerAlreadyHasStudio) {
			response.Conflict(w, "You already have a studio")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, ResponseFromEntity(st))
}

// GetMine handles GET /studios/my
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	st, roster, err := h.service.GetMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			response.NotFound(w, "You do not have a studio")
			return
		}
		response.InternalError(w)
		return
	}

	resp := ResponseFromEntity(st)
	resp.Artists = make([]*artist.ArtistResponse, 0, len(roster))
	for _, a := range roster {
		resp.Artists = append(resp.Artists, artist.ResponseFromEntity(a))
	}
	response.OK(w, resp)
}

// AvailableArtists handles GET /studios/my/available-artists
func (h *Handler) AvailableArtists(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.AvailableArtists(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			response.NotFound(w, "You do not have a studio")
			return
		}
		response.InternalError(w)
		return
	}

	out := make([]*user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ResponseFromEntity(u))
	}
	response.OK(w, out)
}

// Update handles PATCH /studios/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

// AdminUpdate handles PATCH /studios/admin/{id}
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, forceAdmin bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}

	var req UpdateStudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.Update(r.Context(), id, middleware.GetUserID(r.Context()), forceAdmin || isAdmin(r), &req)
	if err != nil {
		writeStudioError(w, err)
		return
	}

	response.OK(w, ResponseFromEntity(st))
}

// Delete handles DELETE /studios/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, false)
}

// AdminDelete handles DELETE /studios/admin/{id}
func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, true)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, forceAdmin bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, middleware.GetUserID(r.Context()), forceAdmin || isAdmin(r)); err != nil {
		writeStudioError(w, err)
		return
	}

	response.NoContent(w)
}

// ListAll handles GET /studios/admin/all
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	studios, err := h.service.ListAll(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*StudioResponse, 0, len(studios))
	for _, st := range studios {
		out = append(out, ResponseFromEntity(st))
	}
	response.OK(w, out)
}

// AddArtistByEmail handles POST /studios/{id}/artists
func (h *Handler) AddArtistByEmail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}

	var req AddArtistByEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	a, err := h.service.AddArtistByEmail(r.Context(), id, middleware.GetUserID(r.Context()), isAdmin(r), &req)
	if err != nil {
		writeRosterError(w, err)
		return
	}

	response.Created(w, artist.ResponseFromEntity(a))
}

// AddArtistByUser handles POST /studios/{id}/artists/by-user
func (h *Handler) AddArtistByUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}

	var req AddArtistByUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	a, err := h.service.AddArtistByUser(r.Context(), id, middleware.GetUserID(r.Context()), isAdmin(r), &req)
	if err != nil {
		writeRosterError(w, err)
		return
	}

	response.Created(w, artist.ResponseFromEntity(a))
}

// UpdateRosterArtist handles PATCH /studios/{id}/artists/{artistId}
func (h *Handler) UpdateRosterArtist(w http.ResponseWriter, r *http.Request) {
	studioID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}
	artistID, err := uuid.Parse(chi.URLParam(r, "artistId"))
	if err != nil {
		response.BadRequest(w, "Invalid artist ID")
		return
	}

	var req UpdateRosterArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	a, err := h.service.UpdateRosterArtist(r.Context(), studioID, artistID, middleware.GetUserID(r.Context()), isAdmin(r), &req)
	if err != nil {
		writeRosterError(w, err)
		return
	}

	response.OK(w, artist.ResponseFromEntity(a))
}

// RemoveArtist handles DELETE /studios/{id}/artists/{artistId}
func (h *Handler) RemoveArtist(w http.ResponseWriter, r *http.Request) {
	studioID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}
	artistID, err := uuid.Parse(chi.URLParam(r, "artistId"))
	if err != nil {
		response.BadRequest(w, "Invalid artist ID")
		return
	}

	if err := h.service.RemoveArtist(r.Context(), studioID, artistID, middleware.GetUserID(r.Context()), isAdmin(r)); err != nil {
		writeRosterError(w, err)
		return
	}

	response.NoContent(w)
}

func isAdmin(r *http.Request) bool {
	return middleware.GetRole(r.Context()) == string(user.RoleAdmin)
}

func writeStudioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrStudioNotFound):
		response.NotFound(w, "Studio not found")
	case errors.Is(err, ErrNotStudioOwner):
		response.Forbidden(w, "You do not own this studio")
	default:
		response.InternalError(w)
	}
}

func writeRosterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrStudioNotFound):
		response.NotFound(w, "Studio not found")
	case errors.Is(err, ErrNotStudioOwner):
		response.Forbidden(w, "You do not own this studio")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, ErrUserNotArtist):
		response.ValidationError(w, map[string]string{"userId": "user does not have the artist role"})
	case errors.Is(err, ErrArtistNotFound):
		response.NotFound(w, "Artist not found")
	case errors.Is(err, ErrArtistNotInStudio):
		response.NotFound(w, "Artist does not belong to this studio")
	default:
		response.InternalError(w)
	}
}
