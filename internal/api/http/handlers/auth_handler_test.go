package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/booking-service/internal/api/http"
	"github.com/spec-kit/booking-service/internal/api/http/handlers"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/observability"
	"github.com/spec-kit/booking-service/internal/service"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
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

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := &memUserRepo{byEmail: map[string]*domain.User{}}
	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenTTLDays: 7,
		BcryptCost:   bcrypt.MinCost,
		AdminEmails:  config.ParseAdminEmails("admin@gmail.com,admin@gail.com"),
	}, repo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	session := auth.NewMiddleware(authService.TokenManager(), repo)
	authHandler := handlers.NewAuthHandler(authService)
	api := app.Group("/api/auth")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/me", session.Handle, authHandler.Me)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRegister_ReturnsUserAndToken(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)
	resp := postJSON(t, app, "/api/auth/register", map[string]any{
		"name":     "Test User",
		"email":    "x@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestRegister_RoleAssignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  map[string]any
		wantRole string
	}{
		{
			name:     "allow-listed email without role field",
			payload:  map[string]any{"name": "Admin", "email": "admin@gmail.com", "password": "secret123"},
			wantRole: "admin",
		},
		{
			name:     "explicit admin request",
			payload:  map[string]any{"name": "User", "email": "x@example.com", "password": "secret123", "role": "admin"},
			wantRole: "admin",
		},
		{
			name:     "no role field",
			payload:  map[string]any{"name": "User", "email": "x@example.com", "password": "secret123"},
			wantRole: "user",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newAuthApp(t)
			resp := postJSON(t, app, "/api/auth/register", tt.payload)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			body := decodeBody(t, resp)
			user := body["user"].(map[string]any)
			assert.Equal(t, tt.wantRole, user["role"])
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)
	payload := map[string]any{"name": "Test User", "email": "x@example.com", "password": "secret123"}

	resp := postJSON(t, app, "/api/auth/register", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "DUPLICATE_EMAIL", errBody["code"])
}

func TestLogin_Flow(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)
	resp := postJSON(t, app, "/api/auth/register", map[string]any{
		"name": "Test User", "email": "x@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", map[string]any{
		"email": "x@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	// unknown email and wrong password must be indistinguishable
	respUnknown := postJSON(t, app, "/api/auth/login", map[string]any{
		"email": "nobody@example.com", "password": "secret123",
	})
	respWrong := postJSON(t, app, "/api/auth/login", map[string]any{
		"email": "x@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, respUnknown.StatusCode)
	assert.Equal(t, respUnknown.StatusCode, respWrong.StatusCode)
	assert.Equal(t, decodeBody(t, respUnknown), decodeBody(t, respWrong))
}

func TestMe(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)
	resp := postJSON(t, app, "/api/auth/register", map[string]any{
		"name": "Test User", "email": "x@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := decodeBody(t, resp)["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	user := decodeBody(t, meResp)["user"].(map[string]any)
	assert.Equal(t, "x@example.com", user["email"])

	// no Authorization header
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	noTokenResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, noTokenResp.StatusCode)
	errBody := decodeBody(t, noTokenResp)["error"].(map[string]any)
	assert.Equal(t, "NO_TOKEN", errBody["code"])

	// token signed under a different secret
	foreign, _, err := auth.NewTokenManager("other-secret", 7).Issue("user-1")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	badResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, badResp.StatusCode)
	errBody = decodeBody(t, badResp)["error"].(map[string]any)
	assert.Equal(t, "INVALID_TOKEN", errBody["code"])
}
