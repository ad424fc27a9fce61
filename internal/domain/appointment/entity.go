package appointment

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
)

// Status of an appointment
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
)

// transitions holds the allowed status moves. CANCELED and COMPLETED
// are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether the move from s to next is allowed
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a booked time slot with an artist. Slots are half-open
// intervals: an appointment ending at 14:00 does not collide with one
// starting at 14:00.
type Appointment struct {
	ID        uuid.UUID      `db:"id"`
	ArtistID  uuid.UUID      `db:"artist_id"`
	ClientID  uuid.UUID      `db:"client_id"`
	StartsAt  time.Time      `db:"starts_at"`
	EndsAt    time.Time      `db:"ends_at"`
	Status    Status         `db:"status"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Overlaps reports whether [a.StartsAt, a.EndsAt) intersects [start, end)
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && a.EndsAt.After(start)
}

// Blocks reports whether this appointment occupies its slot. Canceled
// appointments free the slot.
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCanceled
}

// ArtistSummary is the artist slice joined into appointment reads
type ArtistSummary struct {
	ID          uuid.UUID `db:"ar_id" json:"id"`
	DisplayName string    `db:"ar_display_name" json:"displayName"`
}

// ClientSummary is the client slice joined into appointment reads
type ClientSummary struct {
	ID    uuid.UUID `db:"cl_id" json:"id"`
	Name  string    `db:"cl_name" json:"name"`
	Email string    `db:"cl_email" json:"email"`
}

// StudioSummary is the studio slice joined into the /me views
type StudioSummary struct {
	ID   uuid.UUID `db:"st_id" json:"id"`
	Name string    `db:"st_name" json:"name"`
}

// Detail is an appointment with its joined artist and client
type Detail struct {
	Appointment Appointment
	Artist      ArtistSummary
	Client      ClientSummary
}

// ClientView is one row of the client's own appointment list
type ClientView struct {
	Appointment Appointment
	Artist      ArtistSummary
	Studio      StudioSummary
	Styles      []*style.Style
}

// ArtistView is one row of the artist's own appointment list
type ArtistView struct {
	Appointment Appointment
	Artist      ArtistSummary
	Client      ClientSummary
	Studio      StudioSummary
}
