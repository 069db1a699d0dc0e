// service содержит бизнес-логику планировщика:
// вход через Microsoft, ротацию refresh-токенов с обнаружением повторного
// использования, выход, аутентификацию по access-токену, а также
// постановку уведомлений в outbox и регистрацию токенов устройств.
//
// Service не хранит состояние запроса и безопасен для конкурентного
// использования; вся синхронизация выполняется транзакциями хранилища.
// Ошибки маппятся транспортом на HTTP-коды (см. комментарии к переменным ниже).
package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/identity"
	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
	"github.com/pribylovaa/ab-planner/internal/tokens"
)

var (
	// ErrInvalidCredential — токен не декодируется, сессия не найдена, не совпадает,
	// отозвана или пользователь исчез. Транспорт: 401.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrRefreshExpired — refresh-токен истёк. Транспорт: 401.
	ErrRefreshExpired = errors.New("refresh token expired")

	// ErrForbidden — действие не разрешено роли или чужому пользователю. Транспорт: 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound — запрошенная запись не найдена. Транспорт: 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict — конфликт с существующими данными. Транспорт: 409.
	ErrConflict = errors.New("conflict")

	// ErrValidation — некорректные входные данные. Транспорт: 400.
	ErrValidation = errors.New("validation failed")

	// ErrProviderRejected — провайдер идентичности отклонил код. Транспорт: 400.
	ErrProviderRejected = errors.New("identity provider rejected the login")

	// ErrUpstream — провайдер идентичности недоступен или ответил некорректно. Транспорт: 502.
	ErrUpstream = errors.New("identity provider failure")

	// ErrDefaultRoleMissing — в справочнике нет роли по умолчанию. Транспорт: 500.
	ErrDefaultRoleMissing = errors.New("default role missing")

	// ErrSessionCollision — исчерпаны попытки выпустить уникальный jti. Транспорт: 500.
	ErrSessionCollision = errors.New("session id collision")
)

// Причины отзыва сессий.
const (
	ReasonRotated       = "rotated"
	ReasonExpired       = "expired"
	ReasonReuseDetected = "reuse detected"
	ReasonLogout        = "logout"
	ReasonLogoutAll     = "logout all sessions"
	ReasonLogoutUnknown = "logout token not found"
)

// Actor — аутентифицированный пользователь запроса.
type Actor struct {
	User       models.User
	SessionJTI string
}

// Role возвращает код роли пользователя.
func (a Actor) Role() string {
	return a.User.Role.Code
}

// IsAdmin сообщает, что актор — администратор.
func (a Actor) IsAdmin() bool {
	return a.User.Role.Code == models.RoleAdmin
}

// Service описывает бизнес-логику планировщика.
type Service struct {
	storage     storage.Storage
	codec       *tokens.Codec
	idp         identity.Provider
	cfg         config.AuthConfig
	redirectURI string
	now         func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New создаёт новый экземпляр Service.
// redirectURI — единственный разрешённый адрес возврата после входа Microsoft.
func New(st storage.Storage, codec *tokens.Codec, idp identity.Provider, cfg config.AuthConfig, redirectURI string, opts ...Option) *Service {
	s := &Service{
		storage:     st,
		codec:       codec,
		idp:         idp,
		cfg:         cfg,
		redirectURI: redirectURI,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// targetUser возвращает пользователя, над чьими данными выполняется операция.
// 0 означает самого актора; чужие данные доступны только администратору.
func targetUser(actor Actor, userID int64) (int64, error) {
	if userID == 0 || userID == actor.User.ID {
		return actor.User.ID, nil
	}
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}

	return userID, nil
}
