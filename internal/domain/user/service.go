package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/password"
)

// Service handles user administration logic
type Service struct {
	repo Repository
}

// NewService creates user service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all users, newest first
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// GetByID returns a user by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Create registers a user with the CLIENT role
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         RoleClient,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Phone != "" {
		u.Phone.String = req.Phone
		u.Phone.Valid = true
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateRole sets a user's role (admin only, enforced at the route)
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role Role) (*User, error) {
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// UpdateActive toggles a user's active flag
func (s *Service) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) (*User, error) {
	if err := s.repo.UpdateActive(ctx, id, isActive); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}
