package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	logctx "github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/service"
	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
)

// Authenticator проверяет access-токен.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*service.Actor, error)
}

type actorKey struct{}

// Authenticate требует заголовок Authorization: Bearer <token> и кладёт
// актора в контекст. Любой отказ отдаётся единым 401.
func Authenticate(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apierrors.WriteError(w, r, fmt.Errorf("missing bearer token: %w", service.ErrInvalidCredential))
				return
			}

			actor, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logctx.From(r.Context()).Debug("authentication_failed", slog.String("err", err.Error()))
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			ctx = logctx.With(ctx, slog.Int64("user_id", actor.User.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов; ставится после Authenticate.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok {
				apierrors.WriteError(w, r, service.ErrInvalidCredential)
				return
			}
			if !actor.IsAdmin() {
				apierrors.WriteError(w, r, service.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorFrom достаёт актора, положенного Authenticate.
func ActorFrom(ctx context.Context) (*service.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(*service.Actor)
	return actor, ok && actor != nil
}

// WithActor кладёт актора в контекст (для тестов хендлеров).
func WithActor(ctx context.Context, actor *service.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "

	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(h[len(prefix):])
	return token, token != ""
}
