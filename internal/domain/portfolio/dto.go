package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// CreateItemRequest for POST /portfolio. ImageURL is used when no file is
// uploaded; multipart uploads go through the image pipeline instead.
type CreateItemRequest struct {
	ArtistID    string `json:"artistId" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required,min=2,max=160"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// ItemResponse is the public portfolio shape
type ItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ArtistID     uuid.UUID `json:"artistId"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ResponseFromEntity converts a portfolio item
func ResponseFromEntity(item *Item) *ItemResponse {
	resp := &ItemResponse{
		ID:        item.ID,
		ArtistID:  item.ArtistID,
		Title:     item.Title,
		ImageURL:  item.ImageURL,
		CreatedAt: item.CreatedAt,
	}
	if item.Description.Valid {
		d := item.Description.String
		resp.Description = &d
	}
	if item.ThumbnailURL.Valid {
		th := item.ThumbnailURL.String
		resp.ThumbnailURL = &th
	}
	return resp
}
