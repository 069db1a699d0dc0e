// http собирает REST API планировщика на chi.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
	"github.com/pribylovaa/ab-planner/internal/transport/http/handlers"
	"github.com/pribylovaa/ab-planner/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	CORSOrigins []string
	// AuthRateLimit — запросов в минуту с одного IP к /auth/*; 0 отключает лимит.
	AuthRateLimit int
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.Service, auth middleware.Authenticator, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.RequestID(),          // id нужен и логам, и телу ошибки
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
		middleware.Recover(),
		middleware.Metrics(),
	)
	if len(opts.CORSOrigins) > 0 {
		root.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders:   []string{middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, auth, opts)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, auth, opts)
	return root
}

// registerRoutes — единая точка регистрации REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, auth middleware.Authenticator, opts Options) {
	authn := middleware.Authenticate(auth)

	r.Route("/auth", func(r chi.Router) {
		if opts.AuthRateLimit > 0 {
			r.Use(httprate.Limit(opts.AuthRateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					apierrors.WriteError(w, r, apierrors.ErrRateLimited)
				}),
			))
		}

		r.Get("/microsoft/login-url", h.LoginURL)
		r.Post("/microsoft/token", h.MicrosoftToken)
		r.Post("/refresh", h.Refresh)
		r.With(authn).Post("/logout", h.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Get("/me", h.Me)

		r.Get("/notifications", h.ListNotifications)
		r.Patch("/notifications/{id}", h.UpdateNotification)
		r.With(middleware.RequireAdmin()).Post("/notifications", h.CreateNotification)
		r.With(middleware.RequireAdmin()).Post("/notifications/broadcast", h.Broadcast)

		r.Get("/fcm-tokens", h.ListDeviceTokens)
		r.Post("/fcm-tokens", h.RegisterDeviceToken)
		r.Delete("/fcm-tokens/{id}", h.DeleteDeviceToken)
	})
}
