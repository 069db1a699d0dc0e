package push

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	fcmScope       = "https://www.googleapis.com/auth/firebase.messaging"
	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	assertionTTL = 55 * time.Minute
	// tokenRefreshSkew — bearer обновляется, когда до истечения остаётся меньше.
	tokenRefreshSkew = 60 * time.Second
)

// ServiceAccount — поля ключа service account Google, нужные для OAuth.
type ServiceAccount struct {
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`
}

// LoadServiceAccount читает ключ из inline JSON или из файла.
// Inline-значение, начинающееся с "{", имеет приоритет, иначе оно трактуется как путь.
func LoadServiceAccount(inline, path string) (*ServiceAccount, error) {
	const op = "push.LoadServiceAccount"

	raw := strings.TrimSpace(inline)
	if raw != "" && !strings.HasPrefix(raw, "{") {
		path, raw = raw, ""
	}

	if raw == "" {
		if path == "" {
			return nil, fmt.Errorf("%s: service account is not configured", op)
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		raw = string(b)
	}

	var sa ServiceAccount
	if err := json.Unmarshal([]byte(raw), &sa); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return &sa, nil
}

// FCMOptions — адреса и таймауты шлюза HTTP v1.
type FCMOptions struct {
	ProjectID string
	BaseURL   string
	TokenURL  string
	Timeout   time.Duration
	// Now подменяет часы в тестах.
	Now func() time.Time
}

// FCM — шлюз FCM HTTP v1. Bearer-токен кэшируется и разделяется между горутинами.
type FCM struct {
	sa        *ServiceAccount
	key       *rsa.PrivateKey
	projectID string
	sendURL   string
	tokenURL  string
	client    *http.Client
	now       func() time.Time

	mu        sync.Mutex
	bearer    string
	bearerExp time.Time
}

// NewFCM проверяет service account и создаёт шлюз.
func NewFCM(sa *ServiceAccount, opts FCMOptions) (*FCM, error) {
	const op = "push.NewFCM"

	if sa.PrivateKey == "" || sa.ClientEmail == "" {
		return nil, fmt.Errorf("%s: service account missing private_key or client_email", op)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%s: private key: %w", op, err)
	}

	projectID := opts.ProjectID
	if projectID == "" {
		projectID = sa.ProjectID
	}
	if projectID == "" {
		return nil, fmt.Errorf("%s: project_id is not configured", op)
	}

	tokenURL := sa.TokenURI
	if tokenURL == "" {
		tokenURL = opts.TokenURL
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &FCM{
		sa:        sa,
		key:       key,
		projectID: projectID,
		sendURL:   strings.TrimRight(opts.BaseURL, "/") + "/v1/projects/" + url.PathEscape(projectID) + "/messages:send",
		tokenURL:  tokenURL,
		client:    &http.Client{Timeout: opts.Timeout},
		now:       now,
	}, nil
}

type fcmMessage struct {
	Message struct {
		Token        string             `json:"token"`
		Notification legacyNotification `json:"notification"`
		Data         map[string]string  `json:"data"`
	} `json:"message"`
}

type fcmError struct {
	Error struct {
		Status  string `json:"status"`
		Details []struct {
			Type      string `json:"@type"`
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

// code — FcmError.errorCode из details (UNREGISTERED приходит только там),
// иначе общий error.status.
func (e *fcmError) code() string {
	for _, d := range e.Error.Details {
		if d.ErrorCode != "" {
			return d.ErrorCode
		}
	}

	return e.Error.Status
}

// Send отправляет сообщение на токен. Код ошибки берётся из
// error.details[].errorCode, затем error.status, иначе http_<status>.
func (f *FCM) Send(ctx context.Context, token string, msg Message) error {
	const op = "push.fcm.Send"

	bearer, err := f.accessToken(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var m fcmMessage
	m.Message.Token = token
	m.Message.Notification = legacyNotification{Title: msg.title(), Body: msg.Body}
	m.Message.Data = StringifyData(msg.Data)

	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.sendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var fe fcmError
	if err := json.NewDecoder(resp.Body).Decode(&fe); err == nil && fe.code() != "" {
		return &DeliveryError{Code: fe.code()}
	}

	return &DeliveryError{Code: fmt.Sprintf("http_%d", resp.StatusCode)}
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accessToken возвращает кэшированный bearer или получает новый по JWT assertion.
func (f *FCM) accessToken(ctx context.Context) (string, error) {
	const op = "push.fcm.accessToken"

	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if f.bearer != "" && now.Before(f.bearerExp.Add(-tokenRefreshSkew)) {
		return f.bearer, nil
	}

	assertion, err := f.assertion(now)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: token endpoint status %d", op, resp.StatusCode)
	}

	var or oauthResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("%s: decode: %w", op, err)
	}
	if or.AccessToken == "" {
		return "", fmt.Errorf("%s: empty access_token", op)
	}
	if or.ExpiresIn <= 0 {
		or.ExpiresIn = 3600
	}

	f.bearer = or.AccessToken
	f.bearerExp = now.Add(time.Duration(or.ExpiresIn) * time.Second)

	return f.bearer, nil
}

func (f *FCM) assertion(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":   f.sa.ClientEmail,
		"scope": fcmScope,
		"aud":   f.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if f.sa.PrivateKeyID != "" {
		tok.Header["kid"] = f.sa.PrivateKeyID
	}

	return tok.SignedString(f.key)
}

var _ Sender = (*FCM)(nil)
