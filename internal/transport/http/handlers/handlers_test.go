package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/service"
	"github.com/pribylovaa/ab-planner/internal/transport/http/middleware"
)

// fakeService — Service с подменяемыми функциями; незаданная функция проваливает тест.
type fakeService struct {
	t *testing.T

	loginURL       func(challenge, state string) (string, error)
	loginMicrosoft func(code, verifier, redirect string) (*models.TokenPair, error)
	refresh        func(token string) (*models.TokenPair, error)
	logout         func(actor service.Actor, token *string) error
	list           func(actor service.Actor, f models.NotificationFilter) ([]models.OutboxEntry, error)
	create         func(actor service.Actor, in service.NotificationInput) (*models.OutboxEntry, error)
	update         func(actor service.Actor, id int64, read *bool, readStatus *string) (*models.OutboxEntry, error)
	broadcast      func(actor service.Actor, in service.BroadcastInput) (*models.BroadcastResult, error)
	register       func(actor service.Actor, token, platform string) (*models.DeviceToken, error)
	listDevices    func(actor service.Actor) ([]models.DeviceToken, error)
	deleteDevice   func(actor service.Actor, id int64) error
}

func (f *fakeService) unexpected(name string) {
	f.t.Helper()
	f.t.Fatalf("unexpected call %s", name)
}

func (f *fakeService) LoginURL(c, s string) (string, error) {
	if f.loginURL == nil {
		f.unexpected("LoginURL")
	}
	return f.loginURL(c, s)
}

func (f *fakeService) LoginMicrosoft(_ context.Context, code, verifier, redirect string) (*models.TokenPair, error) {
	if f.loginMicrosoft == nil {
		f.unexpected("LoginMicrosoft")
	}
	return f.loginMicrosoft(code, verifier, redirect)
}

func (f *fakeService) Refresh(_ context.Context, token string) (*models.TokenPair, error) {
	if f.refresh == nil {
		f.unexpected("Refresh")
	}
	return f.refresh(token)
}

func (f *fakeService) Logout(_ context.Context, a service.Actor, token *string) error {
	if f.logout == nil {
		f.unexpected("Logout")
	}
	return f.logout(a, token)
}

func (f *fakeService) ListNotifications(_ context.Context, a service.Actor, filter models.NotificationFilter) ([]models.OutboxEntry, error) {
	if f.list == nil {
		f.unexpected("ListNotifications")
	}
	return f.list(a, filter)
}

func (f *fakeService) CreateNotification(_ context.Context, a service.Actor, in service.NotificationInput) (*models.OutboxEntry, error) {
	if f.create == nil {
		f.unexpected("CreateNotification")
	}
	return f.create(a, in)
}

func (f *fakeService) UpdateNotificationRead(_ context.Context, a service.Actor, id int64, read *bool, readStatus *string) (*models.OutboxEntry, error) {
	if f.update == nil {
		f.unexpected("UpdateNotificationRead")
	}
	return f.update(a, id, read, readStatus)
}

func (f *fakeService) BroadcastToGroups(_ context.Context, a service.Actor, in service.BroadcastInput) (*models.BroadcastResult, error) {
	if f.broadcast == nil {
		f.unexpected("BroadcastToGroups")
	}
	return f.broadcast(a, in)
}

func (f *fakeService) RegisterDeviceToken(_ context.Context, a service.Actor, token, platform string) (*models.DeviceToken, error) {
	if f.register == nil {
		f.unexpected("RegisterDeviceToken")
	}
	return f.register(a, token, platform)
}

func (f *fakeService) ListDeviceTokens(_ context.Context, a service.Actor) ([]models.DeviceToken, error) {
	if f.listDevices == nil {
		f.unexpected("ListDeviceTokens")
	}
	return f.listDevices(a)
}

func (f *fakeService) DeleteDeviceToken(_ context.Context, a service.Actor, id int64) error {
	if f.deleteDevice == nil {
		f.unexpected("DeleteDeviceToken")
	}
	return f.deleteDevice(a, id)
}

var student = &service.Actor{User: models.User{ID: 5, Email: "s@uni.edu", Name: "S", Role: models.Role{Code: models.RoleStudent}}}

// do выполняет запрос через chi-маршрут pattern с актором в контексте (если задан).
func do(t *testing.T, method, pattern, target, body string, a *service.Actor, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if a != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), a))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Error.Code
}

func TestLoginURL(t *testing.T) {
	svc := &fakeService{t: t, loginURL: func(c, s string) (string, error) {
		require.Equal(t, "ch", c)
		require.Equal(t, "st", s)
		return "https://login.example/authorize", nil
	}}

	rr := do(t, http.MethodGet, "/auth/microsoft/login-url", "/auth/microsoft/login-url?code_challenge=ch&state=st", "", nil, New(svc).LoginURL)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"authorization_url":"https://login.example/authorize"}`, rr.Body.String())
}

func TestMicrosoftToken(t *testing.T) {
	pair := &models.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "bearer", ExpiresIn: 1800, User: models.UserProfile{ID: 5}}
	svc := &fakeService{t: t, loginMicrosoft: func(code, verifier, redirect string) (*models.TokenPair, error) {
		require.Equal(t, "c", code)
		require.Equal(t, "v", verifier)
		require.Equal(t, "https://app/cb", redirect)
		return pair, nil
	}}
	h := New(svc).MicrosoftToken

	rr := do(t, http.MethodPost, "/t", "/t", `{"code":"c","code_verifier":"v","redirect_uri":"https://app/cb"}`, nil, h)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.TokenPair
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, *pair, got)

	rr = do(t, http.MethodPost, "/t", "/t", `{"code":"c","extra":1}`, nil, h)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", errCode(t, rr))

	rr = do(t, http.MethodPost, "/t", "/t", "", nil, h)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRefresh_MapsCredentialFailure(t *testing.T) {
	svc := &fakeService{t: t, refresh: func(token string) (*models.TokenPair, error) {
		require.Equal(t, "tok", token)
		return nil, service.ErrRefreshExpired
	}}

	rr := do(t, http.MethodPost, "/r", "/r", `{"refresh_token":"tok"}`, nil, New(svc).Refresh)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "unauthenticated", errCode(t, rr))
}

func TestLogout(t *testing.T) {
	var got []*string
	svc := &fakeService{t: t, logout: func(a service.Actor, token *string) error {
		require.Equal(t, int64(5), a.User.ID)
		got = append(got, token)
		return nil
	}}
	h := New(svc).Logout

	rr := do(t, http.MethodPost, "/l", "/l", "", student, h)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, http.MethodPost, "/l", "/l", `{}`, student, h)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, http.MethodPost, "/l", "/l", `{"refresh_token":"tok"}`, student, h)
	require.Equal(t, http.StatusNoContent, rr.Code)

	require.Len(t, got, 3)
	require.Nil(t, got[0])
	require.Nil(t, got[1])
	require.Equal(t, "tok", *got[2])

	rr = do(t, http.MethodPost, "/l", "/l", "", nil, h)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe(t *testing.T) {
	rr := do(t, http.MethodGet, "/me", "/me", "", student, New(&fakeService{t: t}).Me)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"id":5,"email":"s@uni.edu","name":"S","role":"student"}`, rr.Body.String())
}

func TestListNotifications_ParsesFilter(t *testing.T) {
	svc := &fakeService{t: t, list: func(a service.Actor, f models.NotificationFilter) ([]models.OutboxEntry, error) {
		require.Equal(t, int64(6), f.UserID)
		require.Equal(t, models.DeliveryFailed, *f.DeliveryStatus)
		require.Equal(t, models.ReadUnread, *f.ReadStatus)
		require.Equal(t, 20, f.Limit)
		return []models.OutboxEntry{}, nil
	}}
	h := New(svc).ListNotifications

	rr := do(t, http.MethodGet, "/n", "/n?user_id=6&delivery_status=failed&read_status=unread&limit=20", "", student, h)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, http.MethodGet, "/n", "/n?limit=abc", "", student, h)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, http.MethodGet, "/n", "/n?user_id=-1", "", student, h)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNotification(t *testing.T) {
	svc := &fakeService{t: t, create: func(a service.Actor, in service.NotificationInput) (*models.OutboxEntry, error) {
		require.Equal(t, int64(6), in.UserID)
		require.Equal(t, "Hi", in.Payload.Title)
		require.True(t, *in.Read)
		return &models.OutboxEntry{ID: 1, UserID: 6, Payload: in.Payload}, nil
	}}

	rr := do(t, http.MethodPost, "/n", "/n", `{"user_id":6,"payload":{"title":"Hi","body":"x"},"read":true}`, student, New(svc).CreateNotification)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestUpdateNotification(t *testing.T) {
	svc := &fakeService{t: t, update: func(a service.Actor, id int64, read *bool, readStatus *string) (*models.OutboxEntry, error) {
		require.Equal(t, int64(9), id)
		require.Nil(t, read)
		require.Equal(t, "read", *readStatus)
		return nil, service.ErrForbidden
	}}
	h := New(svc).UpdateNotification

	rr := do(t, http.MethodPatch, "/n/{id}", "/n/9", `{"read_status":"read"}`, student, h)
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "permission_denied", errCode(t, rr))

	rr = do(t, http.MethodPatch, "/n/{id}", "/n/abc", `{"read":true}`, student, h)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBroadcast(t *testing.T) {
	svc := &fakeService{t: t, broadcast: func(a service.Actor, in service.BroadcastInput) (*models.BroadcastResult, error) {
		require.Equal(t, []int64{1, 2}, in.GroupIDs)
		return &models.BroadcastResult{GroupIDs: in.GroupIDs, UserCount: 4, NotificationCount: 4}, nil
	}}

	rr := do(t, http.MethodPost, "/b", "/b", `{"group_ids":[1,2],"title":"t","content":"c"}`, student, New(svc).Broadcast)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"group_ids":[1,2],"user_count":4,"notification_count":4}`, rr.Body.String())
}

func TestDeviceTokens(t *testing.T) {
	svc := &fakeService{
		t: t,
		register: func(a service.Actor, token, platform string) (*models.DeviceToken, error) {
			require.Equal(t, "tok", token)
			require.Equal(t, "android", platform)
			return &models.DeviceToken{ID: 3, UserID: 5, Token: token, Platform: platform}, nil
		},
		listDevices: func(a service.Actor) ([]models.DeviceToken, error) {
			return []models.DeviceToken{{ID: 3, UserID: 5}}, nil
		},
		deleteDevice: func(a service.Actor, id int64) error {
			if id == 4 {
				return service.ErrNotFound
			}
			return nil
		},
	}
	h := New(svc)

	rr := do(t, http.MethodPost, "/f", "/f", `{"token":"tok","platform":"android"}`, student, h.RegisterDeviceToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, http.MethodGet, "/f", "/f", "", student, h.ListDeviceTokens)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, http.MethodDelete, "/f/{id}", "/f/3", "", student, h.DeleteDeviceToken)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, http.MethodDelete, "/f/{id}", "/f/4", "", student, h.DeleteDeviceToken)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
