package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/jwt"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/password"
)

// Service handles registration, login and token rotation
type Service struct {
	userRepo   user.Repository
	jwtService *jwt.Service
	redis      *redis.Client // nil if Redis disabled; refresh rotation degrades to stateless JWTs
}

// NewService creates auth service
func NewService(userRepo user.Repository, jwtService *jwt.Service, redis *redis.Client) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redis,
	}
}

// Register creates a CLIENT account and issues tokens
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*user.User, *TokenPair, error) {
	email := normalizeEmail(req.Email)

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleClient,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Phone != "" {
		u.Phone.String = req.Phone
		u.Phone.Valid = true
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// Login verifies credentials and issues tokens
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*user.User, *TokenPair, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, nil, err
	}
	if u == nil || !password.Verify(req.Password, u.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, nil, ErrAccountDeactivated
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// Refresh rotates a refresh token and issues a new pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// When Redis is configured the stored hash must still be present:
	// a rotated or revoked token is rejected even before its JWT expiry.
	if s.redis != nil {
		key := refreshKey(jwt.HashRefreshToken(refreshToken))
		stored, err := s.redis.Get(ctx, key).Result()
		if err != nil || stored != claims.UserID.String() {
			return nil, ErrInvalidRefreshToken
		}
		if err := s.redis.Del(ctx, key).Err(); err != nil {
			return nil, err
		}
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	if !u.IsActive {
		return nil, ErrAccountDeactivated
	}

	return s.issueTokens(ctx, u)
}

// Me returns the authenticated user's profile
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) issueTokens(ctx context.Context, u *user.User) (*TokenPair, error) {
	access, err := s.jwtService.GenerateAccessToken(u.ID, string(u.Role), u.IsActive)
	if err != nil {
		return nil, err
	}

	refresh, _, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		key := refreshKey(jwt.HashRefreshToken(refresh))
		if err := s.redis.Set(ctx, key, u.ID.String(), s.jwtService.GetRefreshTTL()).Err(); err != nil {
			return nil, err
		}
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func refreshKey(tokenHash string) string {
	return "refresh:" + tokenHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
