package studio

import (
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
)

// SearchFilter narrows the public studio search
type SearchFilter struct {
	Q     string
	City  string
	State string
}

// CreateStudioRequest for POST /studios/my
type CreateStudioRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Address     string `json:"address" validate:"required,min=5,max=200"`
	City        string `json:"city" validate:"required,min=2,max=80"`
	State       string `json:"state" validate:"required,uf"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateStudioRequest for PATCH /studios/{id}; nil fields stay untouched
type UpdateStudioRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Address     *string `json:"address" validate:"omitempty,min=5,max=200"`
	City        *string `json:"city" validate:"omitempty,min=2,max=80"`
	State       *string `json:"state" validate:"omitempty,uf"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
}

// AddArtistByEmailRequest for POST /studios/{id}/artists
type AddArtistByEmailRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"omitempty,min=2,max=120"`
	Bio         string `json:"bio" validate:"omitempty,max=1000"`
	Instagram   string `json:"instagram" validate:"omitempty,max=120"`
}

// AddArtistByUserRequest for POST /studios/{id}/artists/by-user
type AddArtistByUserRequest struct {
	UserID      string `json:"userId" validate:"required,uuid"`
	DisplayName string `json:"displayName" validate:"omitempty,min=2,max=120"`
	Bio         string `json:"bio" validate:"omitempty,max=1000"`
	Instagram   string `json:"instagram" validate:"omitempty,max=120"`
}

// UpdateRosterArtistRequest for PATCH /studios/{id}/artists/{artistId}
type UpdateRosterArtistRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=2,max=120"`
	Bio         *string `json:"bio" validate:"omitempty,max=1000"`
	Instagram   *string `json:"instagram" validate:"omitempty,max=120"`
}

// StudioResponse is the public studio shape
type StudioResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description,omitempty"`
	Address     string                   `json:"address"`
	City        string                   `json:"city"`
	State       string                   `json:"state"`
	Phone       *string                  `json:"phone,omitempty"`
	OwnerID     uuid.UUID                `json:"ownerId"`
	Artists     []*artist.ArtistResponse `json:"artists,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// ResponseFromEntity converts a studio entity
func ResponseFromEntity(s *Studio) *StudioResponse {
	resp := &StudioResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Description.Valid {
		d := s.Description.String
		resp.Description = &d
	}
	if s.Phone.Valid {
		p := s.Phone.String
		resp.Phone = &p
	}
	return resp
}
