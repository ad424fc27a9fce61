package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
)

type fakeRepo struct {
	items map[uuid.UUID]*Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]*Appointment)}
}

func (f *fakeRepo) CreateIfFree(ctx context.Context, a *Appointment) error {
	for _, existing := range f.items {
		if existing.ArtistID == a.ArtistID && existing.Blocks() && existing.Overlaps(a.StartsAt, a.EndsAt) {
			return ErrTimeSlotConflict
		}
	}
	f.items[a.ID] = a
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return f.items[id], nil
}

func (f *fakeRepo) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &Detail{Appointment: *a}, nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]*Detail, int, error) {
	out := []*Detail{}
	for _, a := range f.items {
		if filter.ArtistID != uuid.Nil && a.ArtistID != filter.ArtistID {
			continue
		}
		if filter.ClientID != uuid.Nil && a.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.From != nil && a.StartsAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && a.StartsAt.After(*filter.To) {
			continue
		}
		out = append(out, &Detail{Appointment: *a})
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	a, ok := f.items[id]
	if !ok || a.Status != from {
		return ErrInvalidTransition
	}
	a.Status = to
	return nil
}

func (f *fakeRepo) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ClientView, error) {
	out := []*ClientView{}
	for _, a := range f.items {
		if a.ClientID == clientID {
			out = append(out, &ClientView{Appointment: *a})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForArtist(ctx context.Context, artistID uuid.UUID) ([]*ArtistView, error) {
	out := []*ArtistView{}
	for _, a := range f.items {
		if a.ArtistID == artistID {
			out = append(out, &ArtistView{Appointment: *a})
		}
	}
	return out, nil
}

type fakeArtistRepo struct {
	artists map[uuid.UUID]*artist.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: make(map[uuid.UUID]*artist.Artist)}
}

func (f *fakeArtistRepo) List(ctx context.Context, filter artist.ListFilter) ([]*artist.ListItem, int, error) {
	return nil, 0, nil
}

func (f *fakeArtistRepo) GetByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	return f.artists[id], nil
}

func (f *fakeArtistRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*artist.Artist, error) {
	for _, a := range f.artists {
		if a.UserID.Valid && a.UserID.UUID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) GetDetail(ctx context.Context, id uuid.UUID) (*artist.Detail, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, nil
	}
	return &artist.Detail{Artist: *a}, nil
}

func (f *fakeArtistRepo) CreateWithStyles(ctx context.Context, a *artist.Artist, styleIDs []uuid.UUID) error {
	f.artists[a.ID] = a
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	return nil
}

func (f *fakeUserRepo) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return nil
}

type fixture struct {
	svc      *Service
	repo     *fakeRepo
	artistID uuid.UUID
	clientID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newFakeRepo()
	artists := newFakeArtistRepo()
	users := newFakeUserRepo()

	artistID := uuid.New()
	artists.artists[artistID] = &artist.Artist{ID: artistID, StudioID: uuid.New(), DisplayName: "Rafa Ink"}

	clientID := uuid.New()
	users.users[clientID] = &user.User{ID: clientID, Name: "Ana Silva", Role: user.RoleClient, IsActive: true}

	return &fixture{
		svc:      NewService(repo, artists, users),
		repo:     repo,
		artistID: artistID,
		clientID: clientID,
	}
}

func (fx *fixture) book(t *testing.T, start, end time.Time) *Appointment {
	t.Helper()
	appt, err := fx.svc.Create(context.Background(), fx.clientID, &CreateAppointmentRequest{
		ArtistID: fx.artistID.String(),
		StartsAt: start,
		EndsAt:   end,
	})
	if err != nil {
		t.Fatalf("book %s-%s: %v", start.Format("15:04"), end.Format("15:04"), err)
	}
	return appt
}

var day = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestCreateRejectsOverlap(t *testing.T) {
	fx := newFixture(t)
	fx.book(t, at(10, 0), at(12, 0))

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"starts inside", at(11, 0), at(13, 0)},
		{"ends inside", at(9, 0), at(11, 0)},
		{"contained", at(10, 30), at(11, 30)},
		{"contains", at(9, 0), at(13, 0)},
		{"identical", at(10, 0), at(12, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.Create(context.Background(), fx.clientID, &CreateAppointmentRequest{
				ArtistID: fx.artistID.String(),
				StartsAt: tc.start,
				EndsAt:   tc.end,
			})
			if err != ErrTimeSlotConflict {
				t.Fatalf("err = %v, want ErrTimeSlotConflict", err)
			}
		})
	}
}

func TestCreateAllowsAdjacentSlots(t *testing.T) {
	fx := newFixture(t)
	fx.book(t, at(10, 0), at(12, 0))

	// Half-open intervals: touching boundaries do not collide.
	fx.book(t, at(12, 0), at(13, 0))
	fx.book(t, at(9, 0), at(10, 0))
}

func TestCreateIgnoresCanceledAppointments(t *testing.T) {
	fx := newFixture(t)
	appt := fx.book(t, at(10, 0), at(12, 0))

	appt.Status = StatusCanceled

	fx.book(t, at(10, 0), at(12, 0))
}

func TestCreateAllowsSameSlotForOtherArtist(t *testing.T) {
	fx := newFixture(t)
	fx.book(t, at(10, 0), at(12, 0))

	other := newFixture(t)
	other.repo = fx.repo
	other.svc = NewService(fx.repo, &fakeArtistRepo{artists: map[uuid.UUID]*artist.Artist{
		other.artistID: {ID: other.artistID, DisplayName: "Other"},
	}}, &fakeUserRepo{users: map[uuid.UUID]*user.User{
		other.clientID: {ID: other.clientID, Role: user.RoleClient, IsActive: true},
	}})
	other.book(t, at(10, 0), at(12, 0))
}

func TestCreateRejectsInvalidTimeRange(t *testing.T) {
	fx := newFixture(t)

	for _, tc := range []struct {
		name       string
		start, end time.Time
	}{
		{"inverted", at(12, 0), at(10, 0)},
		{"equal", at(10, 0), at(10, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.Create(context.Background(), fx.clientID, &CreateAppointmentRequest{
				ArtistID: fx.artistID.String(),
				StartsAt: tc.start,
				EndsAt:   tc.end,
			})
			if err != ErrInvalidTimeRange {
				t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
			}
		})
	}
}

func TestCreateUnknownArtist(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Create(context.Background(), fx.clientID, &CreateAppointmentRequest{
		ArtistID: uuid.New().String(),
		StartsAt: at(10, 0),
		EndsAt:   at(11, 0),
	})
	if err != ErrArtistNotFound {
		t.Fatalf("err = %v, want ErrArtistNotFound", err)
	}
}

func TestCreateStartsPending(t *testing.T) {
	fx := newFixture(t)
	appt := fx.book(t, at(10, 0), at(11, 0))

	if appt.Status != StatusPending {
		t.Fatalf("status = %s, want PENDING", appt.Status)
	}
}

func TestStatusMachine(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCompleted, StatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestUpdateStatusAuthorization(t *testing.T) {
	t.Run("client may cancel own booking", func(t *testing.T) {
		fx := newFixture(t)
		appt := fx.book(t, at(10, 0), at(11, 0))

		updated, err := fx.svc.UpdateStatus(context.Background(), appt.ID, fx.clientID, false, StatusCanceled)
		if err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if updated.Status != StatusCanceled {
			t.Fatalf("status = %s", updated.Status)
		}
	})

	t.Run("client may not confirm", func(t *testing.T) {
		fx := newFixture(t)
		appt := fx.book(t, at(10, 0), at(11, 0))

		_, err := fx.svc.UpdateStatus(context.Background(), appt.ID, fx.clientID, false, StatusConfirmed)
		if err != ErrNotAllowed {
			t.Fatalf("err = %v, want ErrNotAllowed", err)
		}
	})

	t.Run("stranger may not cancel", func(t *testing.T) {
		fx := newFixture(t)
		appt := fx.book(t, at(10, 0), at(11, 0))

		_, err := fx.svc.UpdateStatus(context.Background(), appt.ID, uuid.New(), false, StatusCanceled)
		if err != ErrNotAllowed {
			t.Fatalf("err = %v, want ErrNotAllowed", err)
		}
	})

	t.Run("admin may confirm", func(t *testing.T) {
		fx := newFixture(t)
		appt := fx.book(t, at(10, 0), at(11, 0))

		if _, err := fx.svc.UpdateStatus(context.Background(), appt.ID, uuid.New(), true, StatusConfirmed); err != nil {
			t.Fatalf("admin confirm: %v", err)
		}
	})

	t.Run("terminal status rejects transitions", func(t *testing.T) {
		fx := newFixture(t)
		appt := fx.book(t, at(10, 0), at(11, 0))

		if _, err := fx.svc.UpdateStatus(context.Background(), appt.ID, uuid.New(), true, StatusCanceled); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		_, err := fx.svc.UpdateStatus(context.Background(), appt.ID, uuid.New(), true, StatusConfirmed)
		if err != ErrInvalidTransition {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestUpdateStatusByAppointmentArtist(t *testing.T) {
	repo := newFakeRepo()
	artists := newFakeArtistRepo()
	users := newFakeUserRepo()

	artistUserID := uuid.New()
	artistID := uuid.New()
	artists.artists[artistID] = &artist.Artist{
		ID:          artistID,
		UserID:      uuid.NullUUID{UUID: artistUserID, Valid: true},
		DisplayName: "Rafa Ink",
	}

	clientID := uuid.New()
	users.users[clientID] = &user.User{ID: clientID, Role: user.RoleClient, IsActive: true}

	svc := NewService(repo, artists, users)
	appt, err := svc.Create(context.Background(), clientID, &CreateAppointmentRequest{
		ArtistID: artistID.String(),
		StartsAt: at(10, 0),
		EndsAt:   at(11, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, artistUserID, false, StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), appt.ID, artistUserID, false, StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
}

func TestListForArtistNeedsProfile(t *testing.T) {
	fx := newFixture(t)

	if _, err := fx.svc.ListForArtist(context.Background(), uuid.New()); err != ErrArtistNotFound {
		t.Fatalf("err = %v, want ErrArtistNotFound", err)
	}
}
