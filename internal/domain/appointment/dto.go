package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
)

// CreateAppointmentRequest for POST /appointments
type CreateAppointmentRequest struct {
	ArtistID string    `json:"artistId" validate:"required,uuid"`
	StartsAt time.Time `json:"startsAt" validate:"required"`
	EndsAt   time.Time `json:"endsAt" validate:"required"`
	Notes    string    `json:"notes" validate:"omitempty,max=500"`
}

// UpdateStatusRequest for PATCH /appointments/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,appointment_status"`
}

// ListFilter narrows GET /appointments. Date and From/To are mutually
// exclusive; the handler rejects requests carrying both.
type ListFilter struct {
	ArtistID uuid.UUID
	ClientID uuid.UUID
	Status   Status
	From     *time.Time
	To       *time.Time
	Page     int
	Size     int
}

// ArtistResponse is the artist slice of an appointment response
type ArtistResponse struct {
	ID          uuid.UUID      `json:"id"`
	DisplayName string         `json:"displayName"`
	Studio      *StudioSummary `json:"studio,omitempty"`
	Styles      []*style.Style `json:"styles,omitempty"`
}

// AppointmentResponse is the public appointment shape
type AppointmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	ArtistID  uuid.UUID       `json:"artistId"`
	ClientID  uuid.UUID       `json:"clientId"`
	StartsAt  time.Time       `json:"startsAt"`
	EndsAt    time.Time       `json:"endsAt"`
	Status    Status          `json:"status"`
	Notes     *string         `json:"notes,omitempty"`
	Artist    *ArtistResponse `json:"artist,omitempty"`
	Client    *ClientSummary  `json:"client,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ResponseFromEntity converts an appointment entity
func ResponseFromEntity(a *Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:        a.ID,
		ArtistID:  a.ArtistID,
		ClientID:  a.ClientID,
		StartsAt:  a.StartsAt,
		EndsAt:    a.EndsAt,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Notes.Valid {
		n := a.Notes.String
		resp.Notes = &n
	}
	return resp
}

// ResponseFromDetail converts an appointment with joined summaries
func ResponseFromDetail(d *Detail) *AppointmentResponse {
	resp := ResponseFromEntity(&d.Appointment)
	resp.Artist = &ArtistResponse{ID: d.Artist.ID, DisplayName: d.Artist.DisplayName}
	client := d.Client
	resp.Client = &client
	return resp
}

// ResponseFromClientView converts a row of the client's /me view
func ResponseFromClientView(v *ClientView) *AppointmentResponse {
	resp := ResponseFromEntity(&v.Appointment)
	studio := v.Studio
	resp.Artist = &ArtistResponse{
		ID:          v.Artist.ID,
		DisplayName: v.Artist.DisplayName,
		Studio:      &studio,
		Styles:      v.Styles,
	}
	return resp
}

// ResponseFromArtistView converts a row of the artist's /me view
func ResponseFromArtistView(v *ArtistView) *AppointmentResponse {
	resp := ResponseFromEntity(&v.Appointment)
	studio := v.Studio
	resp.Artist = &ArtistResponse{
		ID:          v.Artist.ID,
		DisplayName: v.Artist.DisplayName,
		Studio:      &studio,
	}
	client := v.Client
	resp.Client = &client
	return resp
}
