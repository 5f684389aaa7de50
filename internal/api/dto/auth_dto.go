package dto

import "github.com/spec-kit/booking-service/internal/domain"

// RegisterRequest payload for new accounts. Role is the optional client
// role request fed into the registration policy.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// RequestedRole converts the raw role field to a domain role, nil when
// absent or unknown.
func (r RegisterRequest) RequestedRole() *domain.UserRole {
	if r.Role == nil {
		return nil
	}
	role := domain.UserRole(*r.Role)
	if !role.Valid() {
		return nil
	}
	return &role
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the shared success shape for register and login.
type AuthResponse struct {
	User  domain.PublicView `json:"user"`
	Token string            `json:"token"`
}
