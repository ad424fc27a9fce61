package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "CLIENT", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "CLIENT" {
		t.Errorf("role = %s", claims.Role)
	}
	if !claims.IsActive {
		t.Error("is_active lost")
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, time.Hour)

	refresh, jti, _, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if jti == "" {
		t.Fatal("expected a jti")
	}

	if _, err := svc.ValidateAccessToken(refresh); err != ErrInvalidToken {
		t.Fatalf("access validation err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("refresh validation: %v", err)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute, time.Hour)
	other := NewService("other-secret", 15*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(uuid.New(), "CLIENT", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(uuid.New(), "CLIENT", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err != ErrExpiredToken {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}
}

func TestHashRefreshTokenIsStable(t *testing.T) {
	if HashRefreshToken("abc") != HashRefreshToken("abc") {
		t.Fatal("hash must be deterministic")
	}
	if HashRefreshToken("abc") == HashRefreshToken("abd") {
		t.Fatal("different tokens must hash differently")
	}
}
