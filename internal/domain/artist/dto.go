package artist

import (
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
)

// ListFilter narrows the public artist listing
type ListFilter struct {
	Q        string
	City     string
	Style    string
	StudioID uuid.UUID
	Page     int
	Size     int
}

// CreateArtistRequest for POST /artists (admin)
type CreateArtistRequest struct {
	DisplayName string   `json:"displayName" validate:"required,min=2,max=120"`
	Bio         string   `json:"bio" validate:"omitempty,max=1000"`
	Instagram   string   `json:"instagram" validate:"omitempty,max=120"`
	StudioID    string   `json:"studioId" validate:"required,uuid"`
	Styles      []string `json:"styles" validate:"omitempty,dive,slug"`
}

// ArtistResponse is the public artist shape
type ArtistResponse struct {
	ID          uuid.UUID            `json:"id"`
	UserID      *uuid.UUID           `json:"userId,omitempty"`
	StudioID    uuid.UUID            `json:"studioId"`
	DisplayName string               `json:"displayName"`
	Bio         *string              `json:"bio,omitempty"`
	Instagram   *string              `json:"instagram,omitempty"`
	Studio      *StudioSummary       `json:"studio,omitempty"`
	Styles      []*style.Style       `json:"styles,omitempty"`
	Portfolio   []*PortfolioResponse `json:"portfolio,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// PortfolioResponse is the portfolio slice of the artist detail view
type PortfolioResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ResponseFromEntity converts an artist entity
func ResponseFromEntity(a *Artist) *ArtistResponse {
	resp := &ArtistResponse{
		ID:          a.ID,
		StudioID:    a.StudioID,
		DisplayName: a.DisplayName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.UserID.Valid {
		id := a.UserID.UUID
		resp.UserID = &id
	}
	if a.Bio.Valid {
		bio := a.Bio.String
		resp.Bio = &bio
	}
	if a.Instagram.Valid {
		ig := a.Instagram.String
		resp.Instagram = &ig
	}
	return resp
}

// ResponseFromListItem converts a listing row
func ResponseFromListItem(item *ListItem) *ArtistResponse {
	resp := ResponseFromEntity(&item.Artist)
	studio := item.Studio
	resp.Studio = &studio
	resp.Styles = item.Styles
	return resp
}

// ResponseFromDetail converts the full artist view
func ResponseFromDetail(d *Detail) *ArtistResponse {
	resp := ResponseFromEntity(&d.Artist)
	studio := d.Studio
	resp.Studio = &studio
	resp.Styles = d.Styles
	resp.Portfolio = make([]*PortfolioResponse, 0, len(d.Portfolio))
	for _, p := range d.Portfolio {
		item := &PortfolioResponse{
			ID:        p.ID,
			Title:     p.Title,
			ImageURL:  p.ImageURL,
			CreatedAt: p.CreatedAt,
		}
		if p.ThumbnailURL.Valid {
			thumb := p.ThumbnailURL.String
			item.ThumbnailURL = &thumb
		}
		resp.Portfolio = append(resp.Portfolio, item)
	}
	return resp
}
