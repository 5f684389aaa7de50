package auth

import (
	"strings"

	"github.com/spec-kit/booking-service/internal/domain"
)

// RolePolicy decides the role assigned to a newly registered account. The
// allow-list is fixed at construction; membership is checked against the
// lower-cased candidate email.
type RolePolicy struct {
	adminEmails map[string]struct{}
}

// NewRolePolicy builds a policy from the configured admin allow-list.
func NewRolePolicy(adminEmails []string) *RolePolicy {
	set := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		set[email] = struct{}{}
	}
	return &RolePolicy{adminEmails: set}
}

// Resolve computes the role for a registration. First match wins:
// allow-listed email, then an explicit admin request in the payload, then
// plain user.
//
// The requested-role branch lets any caller self-assign admin. That matches
// the upstream behavior this service replicates; an invite or approval flow
// would have to replace it before production use.
func (p *RolePolicy) Resolve(email string, requested *domain.UserRole) domain.UserRole {
	if _, ok := p.adminEmails[strings.ToLower(strings.TrimSpace(email))]; ok {
		return domain.UserRoleAdmin
	}
	if requested != nil && *requested == domain.UserRoleAdmin {
		return domain.UserRoleAdmin
	}
	return domain.UserRoleUser
}
