package artist

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
)

// Artist is a tattoo artist bound to a studio. UserID is set once the
// artist profile is linked to a login account.
type Artist struct {
	ID          uuid.UUID      `db:"id"`
	UserID      uuid.NullUUID  `db:"user_id"`
	StudioID    uuid.UUID      `db:"studio_id"`
	DisplayName string         `db:"display_name"`
	Bio         sql.NullString `db:"bio"`
	Instagram   sql.NullString `db:"instagram"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// StudioSummary is the studio slice joined into artist reads. Aliased
// columns keep the mapping distinct from the artist's own studio_id.
type StudioSummary struct {
	ID    uuid.UUID `db:"s_id" json:"id"`
	Name  string    `db:"s_name" json:"name"`
	City  string    `db:"s_city" json:"city"`
	State string    `db:"s_state" json:"state"`
}

// PortfolioItem is the portfolio slice joined into the artist detail view
type PortfolioItem struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	ImageURL     string         `db:"image_url" json:"imageUrl"`
	ThumbnailURL sql.NullString `db:"thumbnail_url" json:"-"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
}

// ListItem is one row of the public artist listing
type ListItem struct {
	Artist Artist
	Studio StudioSummary
	Styles []*style.Style
}

// Detail is the full public artist view
type Detail struct {
	Artist    Artist
	Studio    StudioSummary
	Styles    []*style.Style
	Portfolio []*PortfolioItem
}
