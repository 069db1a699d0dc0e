package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/service"
	"github.com/pribylovaa/ab-planner/internal/transport/http/handlers"
)

// stubService отвечает пустыми успешными результатами.
type stubService struct{ handlers.Service }

func (stubService) LoginURL(string, string) (string, error) { return "https://login.example", nil }

func (stubService) ListNotifications(context.Context, service.Actor, models.NotificationFilter) ([]models.OutboxEntry, error) {
	return []models.OutboxEntry{}, nil
}

type tokenAuth map[string]*service.Actor

func (a tokenAuth) Authenticate(_ context.Context, token string) (*service.Actor, error) {
	if actor, ok := a[token]; ok {
		return actor, nil
	}
	return nil, service.ErrInvalidCredential
}

func newTestRouter(opts Options) http.Handler {
	auth := tokenAuth{
		"student": {User: models.User{ID: 5, Role: models.Role{Code: models.RoleStudent}}},
		"admin":   {User: models.User{ID: 1, Role: models.Role{Code: models.RoleAdmin}}},
	}
	return NewRouter(stubService{}, auth, opts)
}

func serve(h http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_PublicAndProtected(t *testing.T) {
	h := newTestRouter(Options{})

	rr := serve(h, http.MethodGet, "/auth/microsoft/login-url?code_challenge=x", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = serve(h, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(h, http.MethodGet, "/notifications", "student")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_AdminOnly(t *testing.T) {
	h := newTestRouter(Options{})

	rr := serve(h, http.MethodPost, "/notifications/broadcast", "student")
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = serve(h, http.MethodPost, "/notifications", "student")
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_BasePath(t *testing.T) {
	h := newTestRouter(Options{BasePath: "/api"})

	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/auth/microsoft/login-url?code_challenge=x", "").Code)
	require.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/auth/microsoft/login-url?code_challenge=x", "").Code)
}

func TestRouter_AuthRateLimit(t *testing.T) {
	h := newTestRouter(Options{AuthRateLimit: 2})

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/auth/microsoft/login-url?code_challenge=x", "").Code)
	}

	rr := serve(h, http.MethodGet, "/auth/microsoft/login-url?code_challenge=x", "")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Contains(t, rr.Body.String(), "resource_exhausted")

	// Лимит действует только на /auth.
	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/notifications", "student").Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(Options{CORSOrigins: []string{"https://app.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
