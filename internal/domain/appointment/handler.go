package appointment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/validator"
)

// Handler handles appointment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates appointment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /appointments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	appt, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTimeRange):
			response.ValidationError(w, map[string]string{"startsAt": "must be before endsAt"})
		case errors.Is(err, ErrArtistNotFound):
			response.NotFound(w, "Artist not found")
		case errors.Is(err, ErrClientNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, ErrTimeSlotConflict):
			response.Conflict(w, "Time slot is already booked")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ResponseFromEntity(appt))
}

// List handles GET /appointments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, errMsg := parseListFilter(r)
	if errMsg != "" {
		response.BadRequest(w, errMsg)
		return
	}

	details, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*AppointmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, ResponseFromDetail(d))
	}
	response.WithMeta(w, out, response.Meta{Total: total, Page: filter.Page, Size: filter.Size})
}

// GetByID handles GET /appointments/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	detail, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ResponseFromDetail(detail))
}

// UpdateStatus handles PATCH /appointments/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	isAdmin := middleware.GetRole(r.Context()) == string(user.RoleAdmin)
	appt, err := h.service.UpdateStatus(r.Context(), id, middleware.GetUserID(r.Context()), isAdmin, Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, ErrInvalidTransition):
			response.ValidationError(w, map[string]string{"status": "transition is not allowed from the current status"})
		case errors.Is(err, ErrNotAllowed):
			response.Forbidden(w, "You may not change this appointment")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ResponseFromEntity(appt))
}

// ListMine handles GET /me/appointments
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListForClient(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*AppointmentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ResponseFromClientView(v))
	}
	response.OK(w, out)
}

// ListMineAsArtist handles GET /me/artist/appointments
func (h *Handler) ListMineAsArtist(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListForArtist(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			response.NotFound(w, "You do not have an artist profile")
			return
		}
		response.InternalError(w)
		return
	}

	out := make([]*AppointmentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ResponseFromArtistView(v))
	}
	response.OK(w, out)
}

// parseListFilter reads the query string of GET /appointments. It returns
// a non-empty message when the query is malformed.
func parseListFilter(r *http.Request) (ListFilter, string) {
	q := r.URL.Query()
	var filter ListFilter

	if raw := q.Get("artistId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, "Invalid artistId"
		}
		filter.ArtistID = id
	}
	if raw := q.Get("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, "Invalid clientId"
		}
		filter.ClientID = id
	}
	if raw := q.Get("status"); raw != "" {
		status := Status(raw)
		if !status.IsValid() {
			return filter, "Invalid status"
		}
		filter.Status = status
	}

	date := q.Get("date")
	from := q.Get("from")
	to := q.Get("to")

	if date != "" && (from != "" || to != "") {
		return filter, "date cannot be combined with from/to"
	}

	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return filter, "Invalid date, expected YYYY-MM-DD"
		}
		start := day.UTC()
		end := start.Add(24*time.Hour - time.Millisecond)
		filter.From = &start
		filter.To = &end
	}
	if from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, "Invalid from, expected RFC 3339"
		}
		filter.From = &t
	}
	if to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, "Invalid to, expected RFC 3339"
		}
		filter.To = &t
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

	return filter, ""
}
