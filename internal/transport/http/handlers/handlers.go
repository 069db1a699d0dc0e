// handlers — REST-обработчики планировщика поверх сервисного слоя.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/service"
	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
	"github.com/pribylovaa/ab-planner/internal/transport/http/middleware"
)

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 1 << 20

// Service — операции сервисного слоя, доступные через REST.
type Service interface {
	LoginURL(codeChallenge, state string) (string, error)
	LoginMicrosoft(ctx context.Context, code, verifier, redirectURI string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, actor service.Actor, refreshToken *string) error

	ListNotifications(ctx context.Context, actor service.Actor, filter models.NotificationFilter) ([]models.OutboxEntry, error)
	CreateNotification(ctx context.Context, actor service.Actor, in service.NotificationInput) (*models.OutboxEntry, error)
	UpdateNotificationRead(ctx context.Context, actor service.Actor, id int64, read *bool, readStatus *string) (*models.OutboxEntry, error)
	BroadcastToGroups(ctx context.Context, actor service.Actor, in service.BroadcastInput) (*models.BroadcastResult, error)

	RegisterDeviceToken(ctx context.Context, actor service.Actor, token, platform string) (*models.DeviceToken, error)
	ListDeviceTokens(ctx context.Context, actor service.Actor) ([]models.DeviceToken, error)
	DeleteDeviceToken(ctx context.Context, actor service.Actor, id int64) error
}

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	svc Service
}

func New(svc Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: неизвестные поля запрещены.
// Пустое тело возвращает io.EOF без обёртки.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %v", apierrors.ErrBadRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", apierrors.ErrBadRequest)
	}

	return nil
}

// decodeRequired — decodeStrict, где пустое тело тоже ошибка.
func decodeRequired(w http.ResponseWriter, r *http.Request, value any) error {
	err := decodeStrict(w, r, value)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty body", apierrors.ErrBadRequest)
	}
	return err
}

// actor достаёт аутентифицированного пользователя; без него отвечает 401.
func actor(w http.ResponseWriter, r *http.Request) (service.Actor, bool) {
	a, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidCredential)
		return service.Actor{}, false
	}
	return *a, true
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", apierrors.ErrBadRequest, name)
	}
	return id, nil
}
