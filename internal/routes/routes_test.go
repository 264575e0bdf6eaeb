package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/dto"
	"github.com/styleverse/styleverse-backend/internal/handlers"
	"github.com/styleverse/styleverse-backend/internal/services"
	"github.com/styleverse/styleverse-backend/internal/storage/memstore"
)

const testAdminToken = "test-admin-token"

func newTestApp(t *testing.T) (*fiber.App, *memstore.Store) {
	t.Helper()

	store := memstore.New()
	cfg := &config.Config{
		JWTSecret:        "route-test-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
		AdminToken:       testAdminToken,
		AssetsDir:        t.TempDir(),
		UploadsDir:       t.TempDir(),
	}

	authService := services.NewAuthService(store, cfg)
	uploadService, err := services.NewUploadService(context.Background(), cfg)
	require.NoError(t, err)

	sessions := session.New()

	app := fiber.New()
	Setup(app, cfg, store, sessions, Handlers{
		Auth:       handlers.NewAuthHandler(authService, sessions, store),
		Health:     handlers.NewHealthHandler("memory", nil),
		User:       handlers.NewUserHandler(store, uploadService),
		Celebrity:  handlers.NewCelebrityHandler(store),
		Brand:      handlers.NewBrandHandler(store),
		Category:   handlers.NewCategoryHandler(store),
		Tournament: handlers.NewTournamentHandler(store),
		Plan:       handlers.NewPlanHandler(store),
		Product:    handlers.NewProductHandler(store),
		Blog:       handlers.NewBlogHandler(store),
		RBAC:       handlers.NewRBACHandler(store),
		Activity:   handlers.NewActivityHandler(store),
	})
	return app, store
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, username string) dto.AuthResponse {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"password": "supersecret",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.AuthResponse](t, resp)
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	health := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "memory", health.Backend)
	assert.Equal(t, "n/a", health.DB)
}

func TestRegisterThenCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)

	auth := registerUser(t, app, "routes-user")
	require.NotEmpty(t, auth.AccessToken)
	require.NotEmpty(t, auth.RefreshToken)
	assert.Equal(t, "routes-user", auth.User.Username)

	req := httptest.NewRequest(http.MethodGet, "/auth/user", nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	me := decode[dto.UserResponse](t, resp)
	assert.Equal(t, auth.User.ID, me.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "routes-login")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", map[string]string{
		"username": "routes-login",
		"password": "not-the-password",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/celebrities", map[string]string{
		"name": "Nobody", "profession": "Actor", "category": "Red Carpet",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminWriteRequiresAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	auth := registerUser(t, app, "routes-plain")

	// Authenticated but not an admin.
	req := jsonRequest(http.MethodPost, "/api/celebrities", map[string]string{
		"name": "Nobody", "profession": "Actor", "category": "Red Carpet",
	})
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCelebrityLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	auth := registerUser(t, app, "routes-admin")
	adminHeaders := func(req *http.Request) *http.Request {
		req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
		req.Header.Set("X-Admin-Token", testAdminToken)
		return req
	}

	// Create
	resp, err := app.Test(adminHeaders(jsonRequest(http.MethodPost, "/api/celebrities", map[string]any{
		"name":       "Zendaya",
		"profession": "Actor",
		"imageUrl":   "https://cdn.example.com/zendaya.jpg",
		"category":   "Red Carpet",
	})))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[map[string]any](t, resp)
	id := int(created["id"].(float64))
	require.NotZero(t, id)
	assert.Equal(t, true, created["isActive"], "isActive defaults to true")

	// Public read
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/celebrities", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]map[string]any](t, resp)
	require.Len(t, list, 1)

	// Delete
	resp, err = app.Test(adminHeaders(httptest.NewRequest(http.MethodDelete, "/api/celebrities/1", nil)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/celebrities/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRefreshEndpointRotates(t *testing.T) {
	app, _ := newTestApp(t)

	auth := registerUser(t, app, "routes-refresh")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": auth.RefreshToken,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rotated := decode[dto.AuthResponse](t, resp)
	assert.NotEqual(t, auth.RefreshToken, rotated.RefreshToken)

	// Old token no longer works.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": auth.RefreshToken,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
