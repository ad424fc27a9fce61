package portfolio

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines portfolio data access
type Repository interface {
	Create(ctx context.Context, item *Item) error
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*Item, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates portfolio repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO portfolio_items (id, artist_id, title, description, image_url, thumbnail_url, created_at)
		VALUES (:id, :artist_id, :title, :description, :image_url, :thumbnail_url, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrArtistNotFound
		}
		return err
	}
	return nil
}

func (r *repository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*Item, error) {
	var out []*Item
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, artist_id, title, description, image_url, thumbnail_url, created_at
		FROM portfolio_items
		WHERE artist_id = $1
		ORDER BY created_at DESC`, artistID)
	if err != nil {
		return nil, err
	}
	return out, nil
}
