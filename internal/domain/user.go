package domain

import "time"

// UserRole enumerates account privilege levels.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// Valid reports whether the role is a known value.
func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// User is the domain model for marketplace accounts. PasswordHash holds the
// bcrypt digest only; the plaintext secret is never stored. Role is fixed at
// registration and never changed through the API.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicView is the caller-facing projection of a user, with the password
// hash stripped.
type PublicView struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone *string  `json:"phone,omitempty"`
	Role  UserRole `json:"role"`
}

// Public returns the projection safe to serialize in responses.
func (u *User) Public() PublicView {
	return PublicView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
