package artist

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service handles artist business logic
type Service struct {
	repo      Repository
	styleRepo style.Repository
}

// NewService creates artist service
func NewService(repo Repository, styleRepo style.Repository) *Service {
	return &Service{repo: repo, styleRepo: styleRepo}
}

// List returns a page of the public artist listing
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*ListItem, int, error) {
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

// GetByID returns the full artist view with studio, styles and portfolio
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrArtistNotFound
	}
	return detail, nil
}

// Create registers an artist with its style links in one transaction.
// Every requested slug must resolve to a known style.
func (s *Service) Create(ctx context.Context, req *CreateArtistRequest) (*Artist, error) {
	studioID, err := uuid.Parse(req.StudioID)
	if err != nil {
		return nil, ErrStudioNotFound
	}

	styles, err := s.styleRepo.GetBySlugs(ctx, req.Styles)
	if err != nil {
		return nil, err
	}
	if len(styles) != len(req.Styles) {
		return nil, ErrUnknownStyle
	}
	styleIDs := make([]uuid.UUID, 0, len(styles))
	for _, st := range styles {
		styleIDs = append(styleIDs, st.ID)
	}

	now := time.Now()
	a := &Artist{
		ID:          uuid.New(),
		StudioID:    studioID,
		DisplayName: req.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Bio != "" {
		a.Bio = sql.NullString{String: req.Bio, Valid: true}
	}
	if req.Instagram != "" {
		a.Instagram = sql.NullString{String: req.Instagram, Valid: true}
	}

	if err := s.repo.CreateWithStyles(ctx, a, styleIDs); err != nil {
		return nil, err
	}
	return a, nil
}
