// identity обменивает код авторизации Microsoft (OAuth2 code + PKCE)
// на проверенный id_token и возвращает идентичность пользователя.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/pkg/log"
)

//go:generate mockgen -source=microsoft.go -destination=../../mocks/mock_identity.go -package=mocks

var (
	// ErrProviderRejected — провайдер отклонил код (поле error или 4xx). Транспорт: 400.
	ErrProviderRejected = errors.New("identity provider rejected the code")
	// ErrUpstream — провайдер недоступен или ответил некорректно
	// (сеть, не-JSON, 5xx, нет id_token, подпись не прошла). Транспорт: 502.
	ErrUpstream = errors.New("identity provider failure")
)

// Identity — проверенные данные пользователя из id_token.
type Identity struct {
	Email  string
	Name   string
	Claims map[string]any
}

// Provider — внешний провайдер идентичности.
type Provider interface {
	Exchange(ctx context.Context, code, verifier, redirectURI string) (*Identity, error)
	AuthorizeURL(codeChallenge, state string) string
}

// Microsoft — клиент Microsoft identity platform v2.0.
type Microsoft struct {
	cfg    config.MicrosoftConfig
	client *http.Client

	mu   sync.Mutex
	jwks *keyfunc.JWKS
}

// NewMicrosoft создаёт клиента. JWKS загружается лениво при первом обмене.
func NewMicrosoft(cfg config.MicrosoftConfig) *Microsoft {
	return &Microsoft{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (m *Microsoft) tenantURL(path string) string {
	return strings.TrimRight(m.cfg.BaseURL, "/") + "/" + m.cfg.Tenant + path
}

// AuthorizeURL собирает адрес страницы входа Microsoft.
func (m *Microsoft) AuthorizeURL(codeChallenge, state string) string {
	q := url.Values{}
	q.Set("client_id", m.cfg.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", m.cfg.RedirectURI)
	q.Set("response_mode", "query")
	q.Set("scope", m.cfg.Scope)
	q.Set("code_challenge", codeChallenge)
	q.Set("code_challenge_method", "S256")
	if state != "" {
		q.Set("state", state)
	}

	return m.tenantURL("/oauth2/v2.0/authorize") + "?" + q.Encode()
}

type tokenResponse struct {
	IDToken          string `json:"id_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Exchange обменивает код и verifier на id_token и проверяет его подпись и audience.
func (m *Microsoft) Exchange(ctx context.Context, code, verifier, redirectURI string) (*Identity, error) {
	const op = "identity.microsoft.Exchange"

	form := url.Values{}
	form.Set("client_id", m.cfg.ClientID)
	form.Set("scope", m.cfg.Scope)
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)
	form.Set("grant_type", "authorization_code")
	form.Set("code_verifier", verifier)
	if m.cfg.ClientSecret != "" {
		form.Set("client_secret", m.cfg.ClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tenantURL("/oauth2/v2.0/token"), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: read body: %v", op, ErrUpstream, err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("%s: %w: status %d, non-json body", op, ErrUpstream, resp.StatusCode)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%s: %w: status %d", op, ErrUpstream, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest || tr.Error != "":
		detail := tr.ErrorDescription
		if detail == "" {
			detail = tr.Error
		}
		log.From(ctx).Warn("microsoft_token_rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", tr.Error),
		)
		return nil, fmt.Errorf("%s: %w: %s", op, ErrProviderRejected, detail)
	case tr.IDToken == "":
		return nil, fmt.Errorf("%s: %w: missing id_token", op, ErrUpstream)
	}

	claims, err := m.verifyIDToken(tr.IDToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return identityFromClaims(claims), nil
}

func (m *Microsoft) verifyIDToken(raw string) (jwt.MapClaims, error) {
	jwks, err := m.keys()
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"RS256"}))
	token, err := parser.ParseWithClaims(raw, claims, jwks.Keyfunc)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid id_token: %v", ErrUpstream, err)
	}

	if !claims.VerifyAudience(m.cfg.ClientID, true) {
		return nil, fmt.Errorf("%w: id_token audience mismatch", ErrUpstream)
	}

	return claims, nil
}

// keys возвращает JWKS тенанта; keyfunc обновляет набор в фоне и по неизвестному kid.
func (m *Microsoft) keys() (*keyfunc.JWKS, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.jwks != nil {
		return m.jwks, nil
	}

	jwks, err := keyfunc.Get(m.tenantURL("/discovery/v2.0/keys"), keyfunc.Options{
		Client:            m.client,
		RefreshInterval:   m.cfg.JWKSCache,
		RefreshTimeout:    m.cfg.Timeout,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: jwks: %v", ErrUpstream, err)
	}
	m.jwks = jwks

	return jwks, nil
}

// Close останавливает фоновое обновление JWKS.
func (m *Microsoft) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.jwks != nil {
		m.jwks.EndBackground()
		m.jwks = nil
	}
}

func identityFromClaims(claims jwt.MapClaims) *Identity {
	id := &Identity{Claims: map[string]any(claims)}

	for _, key := range []string{"preferred_username", "email", "upn"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			id.Email = strings.TrimSpace(v)
			break
		}
	}
	if v, ok := claims["name"].(string); ok {
		id.Name = strings.TrimSpace(v)
	}

	return id
}

var _ Provider = (*Microsoft)(nil)
