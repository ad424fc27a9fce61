package studio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
)

// Repository defines studio data access. Roster mutations go through
// RunInTx so the ownership check and the write share one transaction.
type Repository interface {
	Create(ctx context.Context, s *Studio) error
	GetByID(ctx context.Context, id uuid.UUID) (*Studio, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Studio, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Studio, error)
	ListAll(ctx context.Context) ([]*Studio, error)
	Update(ctx context.Context, s *Studio) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListArtists(ctx context.Context, studioID uuid.UUID) ([]*artist.Artist, error)
	AvailableArtists(ctx context.Context) ([]*user.User, error)
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes the row operations available inside a roster transaction
type Tx interface {
	GetStudioForUpdate(ctx context.Context, id uuid.UUID) (*Studio, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	SetUserRole(ctx context.Context, userID uuid.UUID, role user.Role) error
	GetArtistByUserID(ctx context.Context, userID uuid.UUID) (*artist.Artist, error)
	GetArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error)
	CreateArtist(ctx context.Context, a *artist.Artist) error
	UpdateArtist(ctx context.Context, a *artist.Artist) error
	DeleteArtist(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates studio repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const studioColumns = `id, name, description, address, city, state, phone, owner_id, created_at, updated_at`

func (r *repository) Create(ctx context.Context, s *Studio) error {
	query := `
		INSERT INTO studios (id, name, description, address, city, state, phone, owner_id, created_at, updated_at)
		VALUES (:id, :name, :description, :address, :city, :state, :phone, :owner_id, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrOwnerAlreadyHasStudio
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Studio, error) {
	var s Studio
	err := r.db.GetContext(ctx, &s,
		`SELECT `+studioColumns+` FROM studios WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Studio, error) {
	var s Studio
	err := r.db.GetContext(ctx, &s,
		`SELECT `+studioColumns+` FROM studios WHERE owner_id = $1`, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Search(ctx context.Context, filter SearchFilter) ([]*Studio, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	idx := 1

	if filter.Q != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+filter.Q+"%")
		idx++
	}
	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", idx))
		args = append(args, "%"+filter.City+"%")
		idx++
	}
	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", idx))
		args = append(args, strings.ToUpper(filter.State))
		idx++
	}

	query := `SELECT ` + studioColumns + ` FROM studios WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY name ASC`

	var out []*Studio
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*Studio, error) {
	var out []*Studio
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+studioColumns+` FROM studios ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, s *Studio) error {
	query := `
		UPDATE studios
		SET name = :name, description = :description, address = :address,
		    city = :city, state = :state, phone = :phone, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStudioNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM studios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStudioNotFound
	}
	return nil
}

func (r *repository) ListArtists(ctx context.Context, studioID uuid.UUID) ([]*artist.Artist, error) {
	var out []*artist.Artist
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, user_id, studio_id, display_name, bio, instagram, created_at, updated_at
		FROM artists
		WHERE studio_id = $1
		ORDER BY display_name ASC`, studioID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) AvailableArtists(ctx context.Context) ([]*user.User, error) {
	var out []*user.User
	err := r.db.SelectContext(ctx, &out, `
		SELECT u.id, u.name, u.email, u.phone, u.password_hash, u.role, u.is_active, u.created_at, u.updated_at
		FROM users u
		WHERE u.role = 'ARTIST'
		  AND u.is_active
		  AND NOT EXISTS (SELECT 1 FROM artists a WHERE a.user_id = u.id)
		ORDER BY u.name ASC`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&txRepo{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

type txRepo struct {
	tx *sqlx.Tx
}

func (t *txRepo) GetStudioForUpdate(ctx context.Context, id uuid.UUID) (*Studio, error) {
	var s Studio
	err := t.tx.GetContext(ctx, &s,
		`SELECT `+studioColumns+` FROM studios WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (t *txRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := t.tx.GetContext(ctx, &u, `
		SELECT id, name, email, phone, password_hash, role, is_active, created_at, updated_at
		FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (t *txRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	err := t.tx.GetContext(ctx, &u, `
		SELECT id, name, email, phone, password_hash, role, is_active, created_at, updated_at
		FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (t *txRepo) SetUserRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, userID)
	return err
}

func (t *txRepo) GetArtistByUserID(ctx context.Context, userID uuid.UUID) (*artist.Artist, error) {
	var a artist.Artist
	err := t.tx.GetContext(ctx, &a, `
		SELECT id, user_id, studio_id, display_name, bio, instagram, created_at, updated_at
		FROM artists WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (t *txRepo) GetArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	var a artist.Artist
	err := t.tx.GetContext(ctx, &a, `
		SELECT id, user_id, studio_id, display_name, bio, instagram, created_at, updated_at
		FROM artists WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (t *txRepo) CreateArtist(ctx context.Context, a *artist.Artist) error {
	_, err := t.tx.NamedExecContext(ctx, `
		INSERT INTO artists (id, user_id, studio_id, display_name, bio, instagram, created_at, updated_at)
		VALUES (:id, :user_id, :studio_id, :display_name, :bio, :instagram, :created_at, :updated_at)`, a)
	return err
}

func (t *txRepo) UpdateArtist(ctx context.Context, a *artist.Artist) error {
	res, err := t.tx.NamedExecContext(ctx, `
		UPDATE artists
		SET studio_id = :studio_id, display_name = :display_name,
		    bio = :bio, instagram = :instagram, updated_at = :updated_at
		WHERE id = :id`, a)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrArtistNotFound
	}
	return nil
}

func (t *txRepo) DeleteArtist(ctx context.Context, id uuid.UUID) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrArtistNotFound
	}
	return nil
}
