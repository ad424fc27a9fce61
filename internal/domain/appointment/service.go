package appointment

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service handles appointment business logic
type Service struct {
	repo       Repository
	artistRepo artist.Repository
	userRepo   user.Repository
}

// NewService creates appointment service
func NewService(repo Repository, artistRepo artist.Repository, userRepo user.Repository) *Service {
	return &Service{
		repo:       repo,
		artistRepo: artistRepo,
		userRepo:   userRepo,
	}
}

// Create books a slot with an artist for the calling client. The booking
// is rejected when the slot overlaps a non-canceled appointment of the
// same artist.
func (s *Service) Create(ctx context.Context, clientID uuid.UUID, req *CreateAppointmentRequest) (*Appointment, error) {
	artistID, err := uuid.Parse(req.ArtistID)
	if err != nil {
		return nil, ErrArtistNotFound
	}

	if !req.StartsAt.Before(req.EndsAt) {
		return nil, ErrInvalidTimeRange
	}

	a, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArtistNotFound
	}

	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	now := time.Now()
	appt := &Appointment{
		ID:        uuid.New(),
		ArtistID:  artistID,
		ClientID:  clientID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Notes != "" {
		appt.Notes = sql.NullString{String: req.Notes, Valid: true}
	}

	if err := s.repo.CreateIfFree(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// List returns a page of appointments matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Detail, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = defaultPageSize
	}
	if filter.Size > maxPageSize {
		filter.Size = maxPageSize
	}
	return s.repo.List(ctx, filter)
}

// GetByID returns one appointment with joined artist and client
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrAppointmentNotFound
	}
	return detail, nil
}

// UpdateStatus applies a status transition. The appointment's client may
// cancel; the appointment's artist may confirm, complete or cancel;
// admins may do anything that the state machine allows.
func (s *Service) UpdateStatus(ctx context.Context, id, callerID uuid.UUID, isAdmin bool, next Status) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appt.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if !isAdmin {
		allowed, err := s.callerMayTransition(ctx, appt, callerID, next)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrNotAllowed
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, appt.Status, next); err != nil {
		return nil, err
	}

	appt.Status = next
	appt.UpdatedAt = time.Now()
	return appt, nil
}

// ListForClient returns the caller's bookings, newest first
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ClientView, error) {
	return s.repo.ListForClient(ctx, clientID)
}

// ListForArtist resolves the caller's artist profile and returns its
// schedule, newest first
func (s *Service) ListForArtist(ctx context.Context, userID uuid.UUID) ([]*ArtistView, error) {
	profile, err := s.artistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrArtistNotFound
	}
	return s.repo.ListForArtist(ctx, profile.ID)
}

func (s *Service) callerMayTransition(ctx context.Context, appt *Appointment, callerID uuid.UUID, next Status) (bool, error) {
	if callerID == appt.ClientID && next == StatusCanceled {
		return true, nil
	}

	profile, err := s.artistRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return false, err
	}
	if profile != nil && profile.ID == appt.ArtistID {
		return true, nil
	}
	return false, nil
}
