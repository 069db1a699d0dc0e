// errors стандартизирует ответы об ошибках REST API.
// На вход принимает ошибку сервисного слоя, на выход даёт:
//   - HTTP-статус;
//   - краткий стабильный code и безопасное message без деталей.
//
// Маппинг живёт только здесь; сервисный слой о HTTP не знает.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/ab-planner/internal/service"
)

// StatusClientClosedRequest — нестандартный код "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат ошибки для клиентов.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект ответа.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

var (
	// ErrBadRequest — тело или параметры запроса не разобрались. Транспорт: 400.
	ErrBadRequest = stderrors.New("bad request")
	// ErrRateLimited — превышен лимит запросов с адреса. Транспорт: 429.
	ErrRateLimited = stderrors.New("rate limited")
)

type mapping struct {
	err     error
	status  int
	code    string
	message string
}

// Порядок важен: первая совпавшая ошибка определяет ответ.
var table = []mapping{
	{service.ErrInvalidCredential, http.StatusUnauthorized, "unauthenticated", "unauthenticated"},
	{service.ErrRefreshExpired, http.StatusUnauthorized, "unauthenticated", "unauthenticated"},
	{service.ErrForbidden, http.StatusForbidden, "permission_denied", "permission denied"},
	{service.ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{service.ErrConflict, http.StatusConflict, "already_exists", "already exists"},
	{service.ErrValidation, http.StatusBadRequest, "invalid_argument", "invalid argument"},
	{service.ErrProviderRejected, http.StatusBadRequest, "invalid_argument", "login rejected by identity provider"},
	{ErrBadRequest, http.StatusBadRequest, "invalid_argument", "invalid argument"},
	{ErrRateLimited, http.StatusTooManyRequests, "resource_exhausted", "too many requests"},
	{service.ErrUpstream, http.StatusBadGateway, "bad_gateway", "identity provider unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"},
	{context.Canceled, StatusClientClosedRequest, "canceled", "canceled"},
}

// ToHTTP конвертирует ошибку в HTTP-статус и тело ответа.
// err == nil — ошибка вызова: отдаём 500, чтобы не маскировать баг под 200.
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, m := range table {
			if stderrors.Is(err, m.err) {
				return m.status, ErrorResponse{Error: APIError{Code: m.code, Message: m.message}}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError пишет статус и тело ошибки, добавляя request_id из заголовка.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
