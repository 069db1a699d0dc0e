package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	logctx "github.com/pribylovaa/ab-planner/internal/pkg/log"
	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
)

var errHandlerPanic = errors.New("handler panic")

// Recover превращает panic обработчика планировщика в 500/internal со стеком в логе.
// Если ответ уже начат, статус не переписывается. http.ErrAbortHandler
// пробрасывается дальше: им net/http обрывает соединение.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "http_handler_panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if sw.status == 0 {
					apierrors.WriteError(sw, r, errHandlerPanic)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
