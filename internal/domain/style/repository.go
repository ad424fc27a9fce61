package style

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines style data access
type Repository interface {
	Create(ctx context.Context, s *Style) error
	GetByID(ctx context.Context, id uuid.UUID) (*Style, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]*Style, error)
	List(ctx context.Context) ([]*Style, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates style repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Style) error {
	query := `
		INSERT INTO styles (id, name, slug, created_at)
		VALUES (:id, :name, :slug, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrStyleAlreadyExists
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Style, error) {
	var s Style
	err := r.db.GetContext(ctx, &s,
		`SELECT id, name, slug, created_at FROM styles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetBySlugs(ctx context.Context, slugs []string) ([]*Style, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		`SELECT id, name, slug, created_at FROM styles WHERE slug IN (?) ORDER BY name ASC`, slugs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var out []*Style
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) List(ctx context.Context) ([]*Style, error) {
	var out []*Style
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, name, slug, created_at FROM styles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return out, nil
}
