package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/jwt"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/password"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailAlreadyExists
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = isActive
	return nil
}

func newTestService(repo user.Repository) *Service {
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, jwtService, nil)
}

func TestRegisterCreatesClientAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	u, tokens, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Ana Silva",
		Email:    "Ana@Example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != user.RoleClient {
		t.Fatalf("role = %s, want %s", u.Role, user.RoleClient)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %s", u.Email)
	}
	if !u.IsActive {
		t.Fatal("new account should be active")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if u.PasswordHash == "secret123" {
		t.Fatal("password stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	req := &RegisterRequest{Name: "Ana Silva", Email: "ana@example.com", Password: "secret123"}
	if _, _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), req); err != user.ErrEmailAlreadyExists {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	hash, _ := password.Hash("secret123")
	repo.Create(context.Background(), &user.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         user.RoleClient,
		IsActive:     true,
	})

	t.Run("valid credentials", func(t *testing.T) {
		u, tokens, err := svc.Login(context.Background(), &LoginRequest{Email: "ana@example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if u.Email != "ana@example.com" || tokens.AccessToken == "" {
			t.Fatal("unexpected login result")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &LoginRequest{Email: "ana@example.com", Password: "wrong"})
		if err != ErrInvalidCredentials {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		if err != ErrInvalidCredentials {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	hash, _ := password.Hash("secret123")
	repo.Create(context.Background(), &user.User{
		ID:           uuid.New(),
		Email:        "banned@example.com",
		PasswordHash: hash,
		Role:         user.RoleClient,
		IsActive:     false,
	})

	_, _, err := svc.Login(context.Background(), &LoginRequest{Email: "banned@example.com", Password: "secret123"})
	if err != ErrAccountDeactivated {
		t.Fatalf("err = %v, want ErrAccountDeactivated", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	u, tokens, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Ana Silva",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	next, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatal("expected a fresh token pair")
	}

	// The new access token must still identify the same account.
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	claims, err := jwtService.ValidateAccessToken(next.AccessToken)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if claims.UserID != u.ID {
		t.Fatalf("user id = %s, want %s", claims.UserID, u.ID)
	}
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("err = %v, want ErrInvalidRefreshToken", err)
	}
}
