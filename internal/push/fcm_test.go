package push

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func serviceAccountKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = k
	})
	return testKey
}

func testServiceAccountJSON(t *testing.T, tokenURI string) string {
	t.Helper()

	der, err := x509.MarshalPKCS8PrivateKey(serviceAccountKey(t))
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	b, err := json.Marshal(ServiceAccount{
		ProjectID:    "planner-proj",
		PrivateKeyID: "key-1",
		PrivateKey:   string(pemKey),
		ClientEmail:  "svc@planner-proj.iam.gserviceaccount.com",
		TokenURI:     tokenURI,
	})
	require.NoError(t, err)
	return string(b)
}

// fakeGoogle — OAuth token endpoint и FCM v1 send на одном httptest-сервере.
type fakeGoogle struct {
	srv         *httptest.Server
	tokenCalls  atomic.Int32
	sendStatus  int
	sendBody    string

	mu          sync.Mutex
	lastMessage fcmMessage
}

func (g *fakeGoogle) last() fcmMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastMessage
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	t.Helper()

	g := &fakeGoogle{sendStatus: http.StatusOK, sendBody: `{"name":"projects/planner-proj/messages/1"}`}
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		g.tokenCalls.Add(1)
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != jwtBearerGrant {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(r.PostForm.Get("assertion"), claims, func(*jwt.Token) (any, error) {
			return &serviceAccountKey(t).PublicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}))
		if err != nil || tok.Header["kid"] != "key-1" || claims["scope"] != fcmScope ||
			claims["iss"] != "svc@planner-proj.iam.gserviceaccount.com" || claims["aud"] != g.srv.URL+"/token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"bearer-1","expires_in":3600,"token_type":"Bearer"}`))
	})

	mux.HandleFunc("/v1/projects/planner-proj/messages:send", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer bearer-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		g.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&g.lastMessage)
		g.mu.Unlock()
		w.WriteHeader(g.sendStatus)
		_, _ = w.Write([]byte(g.sendBody))
	})

	g.srv = httptest.NewServer(mux)
	t.Cleanup(g.srv.Close)
	return g
}

func (g *fakeGoogle) client(t *testing.T, now func() time.Time) *FCM {
	t.Helper()

	sa, err := LoadServiceAccount(testServiceAccountJSON(t, g.srv.URL+"/token"), "")
	require.NoError(t, err)

	f, err := NewFCM(sa, FCMOptions{BaseURL: g.srv.URL, Timeout: 5 * time.Second, Now: now})
	require.NoError(t, err)
	return f
}

func TestFCM_Send_OK(t *testing.T) {
	g := newFakeGoogle(t)
	f := g.client(t, nil)

	err := f.Send(context.Background(), "device-1", Message{Title: "Lesson updated", Body: "b", Data: map[string]any{"lesson_id": 3}})
	require.NoError(t, err)

	msg := g.last().Message
	require.Equal(t, "device-1", msg.Token)
	require.Equal(t, "Lesson updated", msg.Notification.Title)
	require.Equal(t, map[string]string{"lesson_id": "3"}, msg.Data)
}

func TestFCM_BearerCachedUntilSkew(t *testing.T) {
	g := newFakeGoogle(t)

	now := time.Now()
	clock := func() time.Time { return now }
	f := g.client(t, clock)

	require.NoError(t, f.Send(context.Background(), "d", Message{}))
	require.NoError(t, f.Send(context.Background(), "d", Message{}))
	require.EqualValues(t, 1, g.tokenCalls.Load())

	// до истечения больше 60 секунд: кэш используется.
	now = now.Add(58 * time.Minute)
	require.NoError(t, f.Send(context.Background(), "d", Message{}))
	require.EqualValues(t, 1, g.tokenCalls.Load())

	// меньше 60 секунд: обновляем.
	now = now.Add(90 * time.Second)
	require.NoError(t, f.Send(context.Background(), "d", Message{}))
	require.EqualValues(t, 2, g.tokenCalls.Load())
}

func TestFCM_Send_UnregisteredFromDetails(t *testing.T) {
	g := newFakeGoogle(t)
	g.sendStatus = http.StatusNotFound
	g.sendBody = `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND",` +
		`"details":[{"@type":"type.googleapis.com/google.firebase.fcm.v1.FcmError","errorCode":"UNREGISTERED"}]}}`

	err := g.client(t, nil).Send(context.Background(), "gone", Message{})
	require.True(t, IsUnregistered(err))
	require.Equal(t, "UNREGISTERED", ErrorCode(err))
}

func TestFCM_Send_StatusWithoutDetails(t *testing.T) {
	g := newFakeGoogle(t)
	g.sendStatus = http.StatusBadRequest
	g.sendBody = `{"error":{"code":400,"message":"bad token","status":"INVALID_ARGUMENT"}}`

	err := g.client(t, nil).Send(context.Background(), "bad", Message{})
	require.False(t, IsUnregistered(err))
	require.Equal(t, "INVALID_ARGUMENT", ErrorCode(err))
}

func TestFCM_Send_HTTPCodeWithoutStatus(t *testing.T) {
	g := newFakeGoogle(t)
	g.sendStatus = http.StatusBadGateway
	g.sendBody = `<html></html>`

	err := g.client(t, nil).Send(context.Background(), "d", Message{})
	require.Equal(t, "http_502", ErrorCode(err))
}

func TestNewFCM_Validation(t *testing.T) {
	_, err := NewFCM(&ServiceAccount{ClientEmail: "x"}, FCMOptions{})
	require.Error(t, err)

	sa, err := LoadServiceAccount(testServiceAccountJSON(t, ""), "")
	require.NoError(t, err)
	sa.ProjectID = ""

	_, err = NewFCM(sa, FCMOptions{})
	require.Error(t, err)

	f, err := NewFCM(sa, FCMOptions{ProjectID: "override", BaseURL: "https://fcm.example/", TokenURL: "https://oauth.example/token"})
	require.NoError(t, err)
	require.Equal(t, "https://fcm.example/v1/projects/override/messages:send", f.sendURL)
	require.Equal(t, "https://oauth.example/token", f.tokenURL)
}
