package studio

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Studio is a tattoo studio. Each owner account holds at most one studio.
type Studio struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Address     string         `db:"address"`
	City        string         `db:"city"`
	State       string         `db:"state"`
	Phone       sql.NullString `db:"phone"`
	OwnerID     uuid.UUID      `db:"owner_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
