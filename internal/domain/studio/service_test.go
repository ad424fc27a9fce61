package studio

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
)

type fakeRepo struct {
	studios map[uuid.UUID]*Studio
	users   map[uuid.UUID]*user.User
	artists map[uuid.UUID]*artist.Artist
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		studios: make(map[uuid.UUID]*Studio),
		users:   make(map[uuid.UUID]*user.User),
		artists: make(map[uuid.UUID]*artist.Artist),
	}
}

func (f *fakeRepo) Create(ctx context.Context, s *Studio) error {
	for _, existing := range f.studios {
		if existing.OwnerID == s.OwnerID {
			return ErrOwnerAlreadyHasStudio
		}
	}
	f.studios[s.ID] = s
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Studio, error) {
	return f.studios[id], nil
}

func (f *fakeRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Studio, error) {
	for _, s := range f.studios {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Search(ctx context.Context, filter SearchFilter) ([]*Studio, error) {
	out := []*Studio{}
	for _, s := range f.studios {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*Studio, error) {
	return f.Search(ctx, SearchFilter{})
}

func (f *fakeRepo) Update(ctx context.Context, s *Studio) error {
	if _, ok := f.studios[s.ID]; !ok {
		return ErrStudioNotFound
	}
	f.studios[s.ID] = s
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.studios[id]; !ok {
		return ErrStudioNotFound
	}
	delete(f.studios, id)
	return nil
}

func (f *fakeRepo) ListArtists(ctx context.Context, studioID uuid.UUID) ([]*artist.Artist, error) {
	out := []*artist.Artist{}
	for _, a := range f.artists {
		if a.StudioID == studioID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) AvailableArtists(ctx context.Context) ([]*user.User, error) {
	out := []*user.User{}
	for _, u := range f.users {
		if u.Role != user.RoleArtist || !u.IsActive {
			continue
		}
		linked := false
		for _, a := range f.artists {
			if a.UserID.Valid && a.UserID.UUID == u.ID {
				linked = true
				break
			}
		}
		if !linked {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	return fn(&fakeTx{repo: f})
}

type fakeTx struct {
	repo *fakeRepo
}

func (t *fakeTx) GetStudioForUpdate(ctx context.Context, id uuid.UUID) (*Studio, error) {
	return t.repo.studios[id], nil
}

func (t *fakeTx) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range t.repo.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (t *fakeTx) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return t.repo.users[id], nil
}

func (t *fakeTx) SetUserRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	u, ok := t.repo.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (t *fakeTx) GetArtistByUserID(ctx context.Context, userID uuid.UUID) (*artist.Artist, error) {
	for _, a := range t.repo.artists {
		if a.UserID.Valid && a.UserID.UUID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (t *fakeTx) GetArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	return t.repo.artists[id], nil
}

func (t *fakeTx) CreateArtist(ctx context.Context, a *artist.Artist) error {
	t.repo.artists[a.ID] = a
	return nil
}

func (t *fakeTx) UpdateArtist(ctx context.Context, a *artist.Artist) error {
	if _, ok := t.repo.artists[a.ID]; !ok {
		return ErrArtistNotFound
	}
	t.repo.artists[a.ID] = a
	return nil
}

func (t *fakeTx) DeleteArtist(ctx context.Context, id uuid.UUID) error {
	if _, ok := t.repo.artists[id]; !ok {
		return ErrArtistNotFound
	}
	delete(t.repo.artists, id)
	return nil
}

func seedStudio(repo *fakeRepo, ownerID uuid.UUID) *Studio {
	st := &Studio{
		ID:      uuid.New(),
		Name:    "Black Lotus Ink",
		Address: "Rua Augusta 1200",
		City:    "Sao Paulo",
		State:   "SP",
		OwnerID: ownerID,
	}
	repo.studios[st.ID] = st
	return st
}

func TestCreateForOwnerSecondStudioConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()

	req := &CreateStudioRequest{
		Name:    "Black Lotus Ink",
		Address: "Rua Augusta 1200",
		City:    "Sao Paulo",
		State:   "sp",
	}
	st, err := svc.CreateForOwner(context.Background(), ownerID, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if st.State != "SP" {
		t.Fatalf("state = %q, want uppercased SP", st.State)
	}

	if _, err := svc.CreateForOwner(context.Background(), ownerID, req); err != ErrOwnerAlreadyHasStudio {
		t.Fatalf("err = %v, want ErrOwnerAlreadyHasStudio", err)
	}
}

func TestUpdateRequiresOwnership(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()
	st := seedStudio(repo, ownerID)

	name := "Renamed"
	req := &UpdateStudioRequest{Name: &name}

	if _, err := svc.Update(context.Background(), st.ID, uuid.New(), false, req); err != ErrNotStudioOwner {
		t.Fatalf("stranger: err = %v, want ErrNotStudioOwner", err)
	}

	updated, err := svc.Update(context.Background(), st.ID, ownerID, false, req)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name = %q", updated.Name)
	}

	// Admin bypasses ownership.
	if _, err := svc.Update(context.Background(), st.ID, uuid.New(), true, req); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestAddArtistByEmailPromotesClient(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()
	st := seedStudio(repo, ownerID)

	client := &user.User{
		ID:       uuid.New(),
		Name:     "Joana Reis",
		Email:    "joana@example.com",
		Role:     user.RoleClient,
		IsActive: true,
	}
	repo.users[client.ID] = client

	a, err := svc.AddArtistByEmail(context.Background(), st.ID, ownerID, false, &AddArtistByEmailRequest{
		Email: "Joana@Example.com",
	})
	if err != nil {
		t.Fatalf("add by email: %v", err)
	}

	if client.Role != user.RoleArtist {
		t.Fatalf("role = %s, want ARTIST after promotion", client.Role)
	}
	if a.StudioID != st.ID {
		t.Fatal("artist not bound to the studio")
	}
	if a.DisplayName != "Joana Reis" {
		t.Fatalf("display name = %q, want fallback to user name", a.DisplayName)
	}
	if !a.UserID.Valid || a.UserID.UUID != client.ID {
		t.Fatal("artist not linked to the user account")
	}
}

func TestAddArtistByEmailMergesExistingProfile(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()
	st := seedStudio(repo, ownerID)
	otherStudio := seedStudio(repo, uuid.New())

	u := &user.User{
		ID:       uuid.New(),
		Name:     "Rafael Prado",
		Email:    "rafael@example.com",
		Role:     user.RoleArtist,
		IsActive: true,
	}
	repo.users[u.ID] = u
	existing := &artist.Artist{
		ID:          uuid.New(),
		UserID:      uuid.NullUUID{UUID: u.ID, Valid: true},
		StudioID:    otherStudio.ID,
		DisplayName: "Rafa Ink",
		Bio:         sql.NullString{String: "10 years of blackwork", Valid: true},
	}
	repo.artists[existing.ID] = existing

	a, err := svc.AddArtistByEmail(context.Background(), st.ID, ownerID, false, &AddArtistByEmailRequest{
		Email:     "rafael@example.com",
		Instagram: "@rafa.ink",
	})
	if err != nil {
		t.Fatalf("add by email: %v", err)
	}

	if a.ID != existing.ID {
		t.Fatal("expected a reassignment, not a new artist record")
	}
	if a.StudioID != st.ID {
		t.Fatal("artist not reassigned to the new studio")
	}
	if a.DisplayName != "Rafa Ink" {
		t.Fatalf("display name = %q, blank request field must not clobber", a.DisplayName)
	}
	if !a.Bio.Valid || a.Bio.String != "10 years of blackwork" {
		t.Fatal("bio must survive the merge")
	}
	if !a.Instagram.Valid || a.Instagram.String != "@rafa.ink" {
		t.Fatal("provided instagram must be applied")
	}
}

func TestAddArtistByUserRequiresArtistRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()
	st := seedStudio(repo, ownerID)

	client := &user.User{ID: uuid.New(), Name: "Joana Reis", Role: user.RoleClient, IsActive: true}
	repo.users[client.ID] = client

	_, err := svc.AddArtistByUser(context.Background(), st.ID, ownerID, false, &AddArtistByUserRequest{
		UserID: client.ID.String(),
	})
	if err != ErrUserNotArtist {
		t.Fatalf("err = %v, want ErrUserNotArtist", err)
	}
}

func TestRosterMutationsCheckMembership(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()
	st := seedStudio(repo, ownerID)
	other := seedStudio(repo, uuid.New())

	a := &artist.Artist{ID: uuid.New(), StudioID: other.ID, DisplayName: "Nomad"}
	repo.artists[a.ID] = a

	name := "Renamed"
	_, err := svc.UpdateRosterArtist(context.Background(), st.ID, a.ID, ownerID, false, &UpdateRosterArtistRequest{DisplayName: &name})
	if err != ErrArtistNotInStudio {
		t.Fatalf("patch: err = %v, want ErrArtistNotInStudio", err)
	}

	if err := svc.RemoveArtist(context.Background(), st.ID, a.ID, ownerID, false); err != ErrArtistNotInStudio {
		t.Fatalf("delete: err = %v, want ErrArtistNotInStudio", err)
	}

	if _, ok := repo.artists[a.ID]; !ok {
		t.Fatal("artist from another studio must not be deleted")
	}
}

func TestAvailableArtistsRequiresOwnedStudio(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if _, err := svc.AvailableArtists(context.Background(), uuid.New()); err != ErrStudioNotFound {
		t.Fatalf("err = %v, want ErrStudioNotFound", err)
	}
}
