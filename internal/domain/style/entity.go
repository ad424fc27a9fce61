package style

import (
	"time"

	"github.com/google/uuid"
)

// Style is a tattoo style artists can be tagged with
type Style struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
