package artist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/style"
)

// Repository defines artist data access
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*ListItem, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Artist, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)
	CreateWithStyles(ctx context.Context, a *Artist, styleIDs []uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates artist repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const artistColumns = `a.id, a.user_id, a.studio_id, a.display_name, a.bio, a.instagram, a.created_at, a.updated_at`

type listRow struct {
	Artist
	StudioSummary
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*ListItem, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	idx := 1

	if filter.Q != "" {
		conditions = append(conditions, fmt.Sprintf("a.display_name ILIKE $%d", idx))
		args = append(args, "%"+filter.Q+"%")
		idx++
	}
	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("s.city ILIKE $%d", idx))
		args = append(args, "%"+filter.City+"%")
		idx++
	}
	if filter.Style != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM artist_styles ast
				JOIN styles st ON st.id = ast.style_id
				WHERE ast.artist_id = a.id AND st.slug = $%d
			)`, idx))
		args = append(args, filter.Style)
		idx++
	}
	if filter.StudioID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("a.studio_id = $%d", idx))
		args = append(args, filter.StudioID)
		idx++
	}

	where := strings.Join(conditions, " AND ")
	base := `FROM artists a JOIN studios s ON s.id = a.studio_id WHERE ` + where

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) `+base, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s,
		       s.id AS s_id, s.name AS s_name, s.city AS s_city, s.state AS s_state
		%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d`, artistColumns, base, idx, idx+1)
	args = append(args, filter.Size, (filter.Page-1)*filter.Size)

	var rows []listRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	items := make([]*ListItem, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		items = append(items, &ListItem{Artist: rows[i].Artist, Studio: rows[i].StudioSummary})
		ids = append(ids, rows[i].Artist.ID)
	}

	styles, err := r.stylesByArtist(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, item := range items {
		item.Styles = styles[item.Artist.ID]
	}

	return items, total, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Artist, error) {
	var a Artist
	err := r.db.GetContext(ctx, &a,
		`SELECT `+artistColumns+` FROM artists a WHERE a.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Artist, error) {
	var a Artist
	err := r.db.GetContext(ctx, &a,
		`SELECT `+artistColumns+` FROM artists a WHERE a.user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	var row listRow
	err := r.db.GetContext(ctx, &row, fmt.Sprintf(`
		SELECT %s,
		       s.id AS s_id, s.name AS s_name, s.city AS s_city, s.state AS s_state
		FROM artists a
		JOIN studios s ON s.id = a.studio_id
		WHERE a.id = $1`, artistColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	styles, err := r.stylesByArtist(ctx, []uuid.UUID{row.Artist.ID})
	if err != nil {
		return nil, err
	}

	var portfolio []*PortfolioItem
	err = r.db.SelectContext(ctx, &portfolio, `
		SELECT id, title, image_url, thumbnail_url, created_at
		FROM portfolio_items
		WHERE artist_id = $1
		ORDER BY created_at DESC`, row.Artist.ID)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Artist:    row.Artist,
		Studio:    row.StudioSummary,
		Styles:    styles[row.Artist.ID],
		Portfolio: portfolio,
	}, nil
}

func (r *repository) CreateWithStyles(ctx context.Context, a *Artist, styleIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO artists (id, user_id, studio_id, display_name, bio, instagram, created_at, updated_at)
		VALUES (:id, :user_id, :studio_id, :display_name, :bio, :instagram, :created_at, :updated_at)`, a)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrStudioNotFound
		}
		return err
	}

	for _, styleID := range styleIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO artist_styles (artist_id, style_id) VALUES ($1, $2)`, a.ID, styleID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

type artistStyleRow struct {
	ArtistID uuid.UUID `db:"artist_id"`
	style.Style
}

func (r *repository) stylesByArtist(ctx context.Context, artistIDs []uuid.UUID) (map[uuid.UUID][]*style.Style, error) {
	out := make(map[uuid.UUID][]*style.Style, len(artistIDs))
	if len(artistIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT ast.artist_id, st.id, st.name, st.slug, st.created_at
		FROM artist_styles ast
		JOIN styles st ON st.id = ast.style_id
		WHERE ast.artist_id IN (?)
		ORDER BY st.name ASC`, artistIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []artistStyleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	for i := range rows {
		s := rows[i].Style
		out[rows[i].ArtistID] = append(out[rows[i].ArtistID], &s)
	}
	return out, nil
}
