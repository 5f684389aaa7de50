package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/booking-service/internal/domain"
)

func rolePtr(r domain.UserRole) *domain.UserRole {
	return &r
}

func TestRolePolicy_Resolve(t *testing.T) {
	t.Parallel()

	policy := NewRolePolicy([]string{"admin@gmail.com", "admin@gail.com"})

	tests := []struct {
		name      string
		email     string
		requested *domain.UserRole
		want      domain.UserRole
	}{
		{name: "allow-listed email, no role requested", email: "admin@gmail.com", want: domain.UserRoleAdmin},
		{name: "allow-listed email, case-insensitive", email: "ADMIN@Gmail.COM", want: domain.UserRoleAdmin},
		{name: "allow-listed email beats requested user role", email: "admin@gail.com", requested: rolePtr(domain.UserRoleUser), want: domain.UserRoleAdmin},
		{name: "explicit admin request honored", email: "x@example.com", requested: rolePtr(domain.UserRoleAdmin), want: domain.UserRoleAdmin},
		{name: "no role requested", email: "x@example.com", want: domain.UserRoleUser},
		{name: "explicit user request", email: "x@example.com", requested: rolePtr(domain.UserRoleUser), want: domain.UserRoleUser},
		{name: "surrounding whitespace ignored", email: "  admin@gmail.com  ", want: domain.UserRoleAdmin},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, policy.Resolve(tt.email, tt.requested))
		})
	}
}

func TestNewRolePolicy_NormalizesEntries(t *testing.T) {
	t.Parallel()

	policy := NewRolePolicy([]string{" Admin@Example.COM ", "", "other@example.com"})

	assert.Equal(t, domain.UserRoleAdmin, policy.Resolve("admin@example.com", nil))
	assert.Equal(t, domain.UserRoleAdmin, policy.Resolve("other@example.com", nil))
	assert.Equal(t, domain.UserRoleUser, policy.Resolve("", nil))
}
