package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

const userKey = "auth_user"

// Middleware validates bearer tokens and resolves the session user. Every
// failure after a token is present maps to the same invalid-token response
// so callers cannot probe for account existence.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := bearerToken(c.Get("Authorization"))
	if token == "" {
		return apperrors.NewNoToken()
	}

	userID, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewInvalidToken()
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		// lookup miss is deliberately indistinguishable from a bad signature
		return apperrors.NewInvalidToken()
	}
	user.PasswordHash = ""

	c.Locals(userKey, user)
	return c.Next()
}

// bearerToken strips an optional Bearer prefix. Anything left over is
// handed to Verify as-is; a garbled header fails there, not here.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}

// RequireAdmin gates a route to admin sessions. It assumes Handle has
// already run.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewInvalidToken()
		}
		if user.Role != domain.UserRoleAdmin {
			return apperrors.NewForbidden("admin only access")
		}
		return c.Next()
	}
}

// UserFromContext retrieves the authenticated user set by Handle.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(userKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
