package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrTimeSlotConflict    = errors.New("time slot is already booked")
	ErrInvalidTimeRange    = errors.New("startsAt must be before endsAt")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotAllowed          = errors.New("caller may not change this appointment")
)
