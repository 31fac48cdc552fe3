package request

// RegisterRequest creates a new account. Self-service registration is
// limited to non-privileged roles; admin accounts are provisioned out of
// band.
type RegisterRequest struct {
	Name     string         `json:"name" validate:"required,min=1,max=50"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6"`
	Role     string         `json:"role,omitempty" validate:"omitempty,oneof=user seller"`
	Phone    *string        `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address  map[string]any `json:"address,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest applies a partial profile update; absent fields
// keep their prior values.
type UpdateProfileRequest struct {
	Name    *string         `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Phone   *string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address *map[string]any `json:"address,omitempty"`
}
