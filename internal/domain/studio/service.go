package studio

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
)

// Service handles studio business logic
type Service struct {
	repo Repository
}

// NewService creates studio service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns studios matching the public search filter
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]*Studio, error) {
	return s.repo.Search(ctx, filter)
}

// GetByID returns one studio
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Studio, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStudioNotFound
	}
	return st, nil
}

// ListAll returns every studio (admin view)
func (s *Service) ListAll(ctx context.Context) ([]*Studio, error) {
	return s.repo.ListAll(ctx)
}

// CreateForOwner creates the caller's studio; a second studio is a conflict
func (s *Service) CreateForOwner(ctx context.Context, ownerID uuid.UUID, req *CreateStudioRequest) (*Studio, error) {
	now := time.Now()
	st := &Studio{
		ID:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     strings.ToUpper(req.State),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != "" {
		st.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if req.Phone != "" {
		st.Phone = sql.NullString{String: req.Phone, Valid: true}
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// GetMine returns the caller's studio with its artist roster
func (s *Service) GetMine(ctx context.Context, ownerID uuid.UUID) (*Studio, []*artist.Artist, error) {
	st, err := s.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if st == nil {
		return nil, nil, ErrStudioNotFound
	}

	roster, err := s.repo.ListArtists(ctx, st.ID)
	if err != nil {
		return nil, nil, err
	}
	return st, roster, nil
}

// AvailableArtists lists ARTIST-role accounts that have no artist profile
// yet. The caller must own a studio.
func (s *Service) AvailableArtists(ctx context.Context, ownerID uuid.UUID) ([]*user.User, error) {
	st, err := s.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStudioNotFound
	}
	return s.repo.AvailableArtists(ctx)
}

// Update patches studio fields. Non-admin callers must own the studio.
func (s *Service) Update(ctx context.Context, studioID, callerID uuid.UUID, isAdmin bool, req *UpdateStudioRequest) (*Studio, error) {
	st, err := s.repo.GetByID(ctx, studioID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStudioNotFound
	}
	if !isAdmin && st.OwnerID != callerID {
		return nil, ErrNotStudioOwner
	}

	applyStudioPatch(st, req)
	st.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete removes a studio. Non-admin callers must own it.
func (s *Service) Delete(ctx context.Context, studioID, callerID uuid.UUID, isAdmin bool) error {
	st, err := s.repo.GetByID(ctx, studioID)
	if err != nil {
		return err
	}
	if st == nil {
		return ErrStudioNotFound
	}
	if !isAdmin && st.OwnerID != callerID {
		return ErrNotStudioOwner
	}
	return s.repo.Delete(ctx, studioID)
}

// AddArtistByEmail attaches a user to the roster by email. A CLIENT account
// is promoted to ARTIST; an existing artist profile is reassigned with a
// non-destructive field merge. Runs in one transaction with the ownership
// check so a concurrent owner change cannot slip between check and write.
func (s *Service) AddArtistByEmail(ctx context.Context, studioID, callerID uuid.UUID, isAdmin bool, req *AddArtistByEmailRequest) (*artist.Artist, error) {
	var result *artist.Artist
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		st, err := s.assertOwnership(ctx, tx, studioID, callerID, isAdmin)
		if err != nil {
			return err
		}

		u, err := tx.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}

		if u.Role == user.RoleClient {
			if err := tx.SetUserRole(ctx, u.ID, user.RoleArtist); err != nil {
				return err
			}
		}

		result, err = s.mergeOrCreateArtist(ctx, tx, st.ID, u, req.DisplayName, req.Bio, req.Instagram)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddArtistByUser attaches a user to the roster by ID. The user must
// already hold the ARTIST role.
func (s *Service) AddArtistByUser(ctx context.Context, studioID, callerID uuid.UUID, isAdmin bool, req *AddArtistByUserRequest) (*artist.Artist, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, user.ErrUserNotFound
	}

	var result *artist.Artist
	err = s.repo.RunInTx(ctx, func(tx Tx) error {
		st, err := s.assertOwnership(ctx, tx, studioID, callerID, isAdmin)
		if err != nil {
			return err
		}

		u, err := tx.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		if u.Role != user.RoleArtist {
			return ErrUserNotArtist
		}

		result, err = s.mergeOrCreateArtist(ctx, tx, st.ID, u, req.DisplayName, req.Bio, req.Instagram)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateRosterArtist patches display fields of a roster member
func (s *Service) UpdateRosterArtist(ctx context.Context, studioID, artistID, callerID uuid.UUID, isAdmin bool, req *UpdateRosterArtistRequest) (*artist.Artist, error) {
	var result *artist.Artist
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		if _, err := s.assertOwnership(ctx, tx, studioID, callerID, isAdmin); err != nil {
			return err
		}

		a, err := tx.GetArtistByID(ctx, artistID)
		if err != nil {
			return err
		}
		if a == nil {
			return ErrArtistNotFound
		}
		if a.StudioID != studioID {
			return ErrArtistNotInStudio
		}

		if req.DisplayName != nil {
			a.DisplayName = *req.DisplayName
		}
		if req.Bio != nil {
			a.Bio = sql.NullString{String: *req.Bio, Valid: *req.Bio != ""}
		}
		if req.Instagram != nil {
			a.Instagram = sql.NullString{String: *req.Instagram, Valid: *req.Instagram != ""}
		}
		a.UpdatedAt = time.Now()

		if err := tx.UpdateArtist(ctx, a); err != nil {
			return err
		}
		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveArtist deletes a roster member's artist record
func (s *Service) RemoveArtist(ctx context.Context, studioID, artistID, callerID uuid.UUID, isAdmin bool) error {
	return s.repo.RunInTx(ctx, func(tx Tx) error {
		if _, err := s.assertOwnership(ctx, tx, studioID, callerID, isAdmin); err != nil {
			return err
		}

		a, err := tx.GetArtistByID(ctx, artistID)
		if err != nil {
			return err
		}
		if a == nil {
			return ErrArtistNotFound
		}
		if a.StudioID != studioID {
			return ErrArtistNotInStudio
		}

		return tx.DeleteArtist(ctx, artistID)
	})
}

func applyStudioPatch(st *Studio, req *UpdateStudioRequest) {
	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.Address != nil {
		st.Address = *req.Address
	}
	if req.City != nil {
		st.City = *req.City
	}
	if req.State != nil {
		st.State = strings.ToUpper(*req.State)
	}
	if req.Phone != nil {
		st.Phone = sql.NullString{String: *req.Phone, Valid: *req.Phone != ""}
	}
}

// assertOwnership locks the studio row and verifies the caller owns it.
// Admins bypass the ownership check but the studio must still exist.
func (s *Service) assertOwnership(ctx context.Context, tx Tx, studioID, callerID uuid.UUID, isAdmin bool) (*Studio, error) {
	st, err := tx.GetStudioForUpdate(ctx, studioID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStudioNotFound
	}
	if !isAdmin && st.OwnerID != callerID {
		return nil, ErrNotStudioOwner
	}
	return st, nil
}

// mergeOrCreateArtist reassigns an existing artist profile to the studio,
// keeping fields the request leaves blank, or creates a fresh profile.
func (s *Service) mergeOrCreateArtist(ctx context.Context, tx Tx, studioID uuid.UUID, u *user.User, displayName, bio, instagram string) (*artist.Artist, error) {
	existing, err := tx.GetArtistByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.StudioID = studioID
		if displayName != "" {
			existing.DisplayName = displayName
		}
		if bio != "" {
			existing.Bio = sql.NullString{String: bio, Valid: true}
		}
		if instagram != "" {
			existing.Instagram = sql.NullString{String: instagram, Valid: true}
		}
		existing.UpdatedAt = time.Now()
		if err := tx.UpdateArtist(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if displayName == "" {
		displayName = u.Name
	}
	now := time.Now()
	a := &artist.Artist{
		ID:          uuid.New(),
		UserID:      uuid.NullUUID{UUID: u.ID, Valid: true},
		StudioID:    studioID,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if bio != "" {
		a.Bio = sql.NullString{String: bio, Valid: true}
	}
	if instagram != "" {
		a.Instagram = sql.NullString{String: instagram, Valid: true}
	}
	if err := tx.CreateArtist(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
