package appointment

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

// Repository defines appointment data access
type Repository interface {
	// CreateIfFree inserts the appointment only if the artist's slot is
	// free. The check and the insert run in one transaction holding a
	// lock on the artist row, so two concurrent bookings for the same
	// artist serialize; one of them gets ErrTimeSlotConflict.
	CreateIfFree(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)
	List(ctx context.Context, filter ListFilter) ([]*Detail, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
	ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ClientView, error)
	ListForArtist(ctx context.Context, artistID uuid.UUID) ([]*ArtistView, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates appointment repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const appointmentColumns = `ap.id, ap.artist_id, ap.client_id, ap.starts_at, ap.ends_at, ap.status, ap.notes, ap.created_at, ap.updated_at`

func (r *repository) CreateIfFree(ctx context.Context, a *Appointment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var one int
	err = tx.GetContext(ctx, &one,
		`SELECT 1 FROM artists WHERE id = $1 FOR UPDATE`, a.ArtistID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrArtistNotFound
	}
	if err != nil {
		return err
	}

	// Half-open interval overlap, canceled appointments don't block.
	var count int
	err = tx.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM appointments
		WHERE artist_id = $1
		  AND status <> 'CANCELED'
		  AND starts_at < $3
		  AND ends_at > $2`, a.ArtistID, a.StartsAt, a.EndsAt)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTimeSlotConflict
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO appointments (id, artist_id, client_id, starts_at, ends_at, status, notes, created_at, updated_at)
		VALUES (:id, :artist_id, :client_id, :starts_at, :ends_at, :status, :notes, :created_at, :updated_at)`, a)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			// Exclusion constraint backstop; same outcome as the recheck.
			if pqErr.Code == "23P01" {
				return ErrTimeSlotConflict
			}
			if pqErr.Code == "23503" {
				return ErrClientNotFound
			}
		}
		return err
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	var a Appointment
	err := r.db.GetContext(ctx, &a,
		`SELECT `+appointmentColumns+` FROM appointments ap WHERE ap.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

type detailRow struct {
	Appointment
	ArtistSummary
	ClientSummary
}

func (r *repository) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	var row detailRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+appointmentColumns+`,
		       a.id AS ar_id, a.display_name AS ar_display_name,
		       u.id AS cl_id, u.name AS cl_name, u.email AS cl_email
		FROM appointments ap
		JOIN artists a ON a.id = ap.artist_id
		JOIN users u ON u.id = ap.client_id
		WHERE ap.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Detail{Appointment: row.Appointment, Artist: row.ArtistSummary, Client: row.ClientSummary}, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Detail, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	idx := 1

	if filter.ArtistID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("ap.artist_id = $%d", idx))
		args = append(args, filter.ArtistID)
		idx++
	}
	if filter.ClientID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("ap.client_id = $%d", idx))
		args = append(args, filter.ClientID)
		idx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("ap.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("ap.starts_at >= $%d", idx))
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("ap.starts_at <= $%d", idx))
		args = append(args, *filter.To)
		idx++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM appointments ap WHERE `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s,
		       a.id AS ar_id, a.display_name AS ar_display_name,
		       u.id AS cl_id, u.name AS cl_name, u.email AS cl_email
		FROM appointments ap
		JOIN artists a ON a.id = ap.artist_id
		JOIN users u ON u.id = ap.client_id
		WHERE %s
		ORDER BY ap.starts_at ASC
		LIMIT $%d OFFSET $%d`, appointmentColumns, where, idx, idx+1)
	args = append(args, filter.Size, (filter.Page-1)*filter.Size)

	var rows []detailRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	out := make([]*Detail, 0, len(rows))
	for i := range rows {
		out = append(out, &Detail{
			Appointment: rows[i].Appointment,
			Artist:      rows[i].ArtistSummary,
			Client:      rows[i].ClientSummary,
		})
	}
	return out, total, nil
}

// UpdateStatus moves the appointment from one status to another. The
// current status is part of the WHERE clause so a concurrent transition
// loses instead of silently overwriting.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInvalidTransition
	}
	return nil
}

type clientViewRow struct {
	Appointment
	ArtistSummary
	StudioSummary
}

func (r *repository) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ClientView, error) {
	var rows []clientViewRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+appointmentColumns+`,
		       a.id AS ar_id, a.display_name AS ar_display_name,
		       s.id AS st_id, s.name AS st_name
		FROM appointments ap
		JOIN artists a ON a.id = ap.artist_id
		JOIN studios s ON s.id = a.studio_id
		WHERE ap.client_id = $1
		ORDER BY ap.starts_at DESC`, clientID)
	if err != nil {
		return nil, err
	}

	artistIDs := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]bool, len(rows))
	for i := range rows {
		if !seen[rows[i].ArtistSummary.ID] {
			seen[rows[i].ArtistSummary.ID] = true
			artistIDs = append(artistIDs, rows[i].ArtistSummary.ID)
		}
	}
	styles, err := r.stylesByArtist(ctx, artistIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*ClientView, 0, len(rows))
	for i := range rows {
		out = append(out, &ClientView{
			Appointment: rows[i].Appointment,
			Artist:      rows[i].ArtistSummary,
			Studio:      rows[i].StudioSummary,
			Styles:      styles[rows[i].ArtistSummary.ID],
		})
	}
	return out, nil
}

type artistViewRow struct {
	Appointment
	ArtistSummary
	ClientSummary
	StudioSummary
}

func (r *repository) ListForArtist(ctx context.Context, artistID uuid.UUID) ([]*ArtistView, error) {
	var rows []artistViewRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+appointmentColumns+`,
		       a.id AS ar_id, a.display_name AS ar_display_name,
		       u.id AS cl_id, u.name AS cl_name, u.email AS cl_email,
		       s.id AS st_id, s.name AS st_name
		FROM appointments ap
		JOIN artists a ON a.id = ap.artist_id
		JOIN users u ON u.id = ap.client_id
		JOIN studios s ON s.id = a.studio_id
		WHERE ap.artist_id = $1
		ORDER BY ap.starts_at DESC`, artistID)
	if err != nil {
		return nil, err
	}

	out := make([]*ArtistView, 0, len(rows))
	for i := range rows {
		out = append(out, &ArtistView{
			Appointment: rows[i].Appointment,
			Artist:      rows[i].ArtistSummary,
			Client:      rows[i].ClientSummary,
			Studio:      rows[i].StudioSummary,
		})
	}
	return out, nil
}

type appointmentStyleRow struct {
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

	var rows []appointmentStyleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	for i := range rows {
		s := rows[i].Style
		out[rows[i].ArtistID] = append(out[rows[i].ArtistID], &s)
	}
	return out, nil
}
