package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

// UserResponse is the outward user projection. The password hash is never
// serialized.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	Avatar    string          `json:"avatar,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	Address   map[string]any  `json:"address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		Avatar:    user.Avatar,
		Phone:     user.Phone,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}
}
