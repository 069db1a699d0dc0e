// tokens выпускает и проверяет подписанные access/refresh токены (JWT, HS256).
//
// Любая ошибка проверки (подпись, алгоритм, срок, тип, форма payload)
// возвращается как единственная ErrInvalidToken: вызывающий код не должен
// различать причины.
package tokens

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — токен не прошёл проверку.
var ErrInvalidToken = errors.New("invalid token")

// Kind — тип токена, кладётся в claim "type".
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// AccessClaims — содержимое access-токена.
type AccessClaims struct {
	UserID     int64  `json:"user_id"`
	Role       string `json:"role"`
	SessionJTI string `json:"session_jti"`
	Type       Kind   `json:"type"`
	jwt.RegisteredClaims
}

// RefreshClaims — содержимое refresh-токена; jti лежит в RegisteredClaims.ID.
type RefreshClaims struct {
	UserID int64 `json:"user_id"`
	Type   Kind  `json:"type"`
	jwt.RegisteredClaims
}

// JTI возвращает идентификатор refresh-токена.
func (c *RefreshClaims) JTI() string {
	return c.ID
}

const leeway = 5 * time.Second

// Codec подписывает и проверяет токены общим секретом процесса.
type Codec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Option настраивает Codec.
type Option func(*Codec)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// WithIssuer добавляет и проверяет claim iss.
func WithIssuer(issuer string) Option {
	return func(c *Codec) { c.issuer = issuer }
}

// New создаёт Codec. Пустой секрет недопустим.
func New(secret string, opts ...Option) (*Codec, error) {
	const op = "tokens.codec.New"

	if secret == "" {
		return nil, fmt.Errorf("%s: empty secret", op)
	}

	c := &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// IssueAccess выпускает access-токен со сроком жизни ttl.
func (c *Codec) IssueAccess(userID int64, role, sessionJTI string, ttl time.Duration) (string, error) {
	claims := AccessClaims{
		UserID:           userID,
		Role:             role,
		SessionJTI:       sessionJTI,
		Type:             KindAccess,
		RegisteredClaims: c.registered(userID, "", ttl),
	}

	return c.sign(claims)
}

// IssueRefresh выпускает refresh-токен с заданным jti.
func (c *Codec) IssueRefresh(userID int64, jti string, ttl time.Duration) (string, error) {
	claims := RefreshClaims{
		UserID:           userID,
		Type:             KindRefresh,
		RegisteredClaims: c.registered(userID, jti, ttl),
	}

	return c.sign(claims)
}

// VerifyAccess проверяет access-токен.
func (c *Codec) VerifyAccess(token string) (*AccessClaims, error) {
	var claims AccessClaims
	if err := c.verify(token, &claims); err != nil {
		return nil, err
	}

	if claims.Type != KindAccess || claims.UserID <= 0 || claims.SessionJTI == "" {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

// VerifyRefresh проверяет refresh-токен.
func (c *Codec) VerifyRefresh(token string) (*RefreshClaims, error) {
	var claims RefreshClaims
	if err := c.verify(token, &claims); err != nil {
		return nil, err
	}

	if claims.Type != KindRefresh || claims.UserID <= 0 || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

func (c *Codec) registered(userID int64, jti string, ttl time.Duration) jwt.RegisteredClaims {
	now := c.now()

	return jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        jti,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (c *Codec) sign(claims jwt.Claims) (string, error) {
	const op = "tokens.codec.sign"

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

func (c *Codec) verify(token string, claims jwt.Claims) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}

	return nil
}

// NewJTI генерирует идентификатор refresh-токена: 16 случайных байт в hex.
func NewJTI() (string, error) {
	const op = "tokens.NewJTI"

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return hex.EncodeToString(b), nil
}

// HashToken — sha256 от строки токена в hex. В БД хранится только он.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// EqualHash сравнивает хэши за постоянное время.
func EqualHash(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
