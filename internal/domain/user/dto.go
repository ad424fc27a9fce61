package user

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest for POST /users
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// UpdateRoleRequest for PATCH /users/{id}/role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// UpdateActiveRequest for PATCH /users/{id}/active
type UpdateActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// UserResponse represents a user in API responses (never exposes the hash)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`
}

// ResponseFromEntity converts entity to response DTO
func ResponseFromEntity(u *User) *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Phone.Valid {
		resp.Phone = u.Phone.String
	}
	return resp
}
