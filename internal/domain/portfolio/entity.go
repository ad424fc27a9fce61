package portfolio

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Item is one portfolio entry of an artist
type Item struct {
	ID           uuid.UUID      `db:"id"`
	ArtistID     uuid.UUID      `db:"artist_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	ImageURL     string         `db:"image_url"`
	ThumbnailURL sql.NullString `db:"thumbnail_url"`
	CreatedAt    time.Time      `db:"created_at"`
}
