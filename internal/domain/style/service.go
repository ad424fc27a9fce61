package style

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles style business logic
type Service struct {
	repo Repository
}

// NewService creates style service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all styles ordered by name
func (s *Service) List(ctx context.Context) ([]*Style, error) {
	return s.repo.List(ctx)
}

// Create registers a new style; duplicate name or slug is a conflict
func (s *Service) Create(ctx context.Context, req *CreateStyleRequest) (*Style, error) {
	st := &Style{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
