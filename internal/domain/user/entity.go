package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the system (matches user_role enum)
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleArtist Role = "ARTIST"
	RoleAdmin  Role = "ADMIN"
)

// User represents a user account (matches users table)
type User struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Phone        sql.NullString `db:"phone"`
	PasswordHash string         `db:"password_hash"`
	Role         Role           `db:"role"`
	IsActive     bool           `db:"is_active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// IsClient returns true if user is a client
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsArtist returns true if user has the artist role
func (u *User) IsArtist() bool {
	return u.Role == RoleArtist
}

// IsAdmin returns true if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsValidRole checks if role is a known role value
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleClient, RoleArtist, RoleAdmin:
		return true
	}
	return false
}
