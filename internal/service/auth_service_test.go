package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return errors.New("unique constraint violation")
	}
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	copied := *user
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenTTLDays: 7,
		BcryptCost:   bcrypt.MinCost,
		AdminEmails:  config.ParseAdminEmails("admin@gmail.com,admin@gail.com"),
	}
}

func rolePtr(r domain.UserRole) *domain.UserRole {
	return &r
}

func TestAuthService_Register_RoleAssignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		requested *domain.UserRole
		want      domain.UserRole
	}{
		{name: "allow-listed email without role field", email: "admin@gmail.com", want: domain.UserRoleAdmin},
		{name: "explicit admin request", email: "x@example.com", requested: rolePtr(domain.UserRoleAdmin), want: domain.UserRoleAdmin},
		{name: "plain registration", email: "x@example.com", want: domain.UserRoleUser},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewAuthService(testAuthConfig(), newMemUserRepo())
			user, token, _, err := svc.Register(context.Background(), RegisterInput{
				Name:          "Test User",
				Email:         tt.email,
				Password:      "secret123",
				RequestedRole: tt.requested,
			})
			require.NoError(t, err)
			require.NotEmpty(t, token)
			assert.Equal(t, tt.want, user.Role)
			assert.NotEmpty(t, user.ID)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	user, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Test User",
		Email:    "x@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	stored, err := repo.GetByEmail(context.Background(), "x@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.Equal(t, user.ID, stored.ID)
}

func TestAuthService_Register_TokenVerifies(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newMemUserRepo())

	user, token, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Test User",
		Email:    "x@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	subject, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "First", Email: "x@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), RegisterInput{
		Name: "Second", Email: "x@example.com", Password: "other456",
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "DUPLICATE_EMAIL", domainErr.Code)
	assert.Len(t, repo.byEmail, 1)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newMemUserRepo())
	registered, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Test User", Email: "x@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "x@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newMemUserRepo())
	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Test User", Email: "x@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "secret123")
	require.Error(t, unknownErr)
	_, _, _, wrongErr := svc.Login(context.Background(), "x@example.com", "wrong-password")
	require.Error(t, wrongErr)

	unknown := apperrors.ToDomainError(unknownErr)
	wrong := apperrors.ToDomainError(wrongErr)
	assert.Equal(t, "INVALID_CREDENTIALS", unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Message, wrong.Message)
	assert.Equal(t, unknown.HTTPStatus, wrong.HTTPStatus)
}
