package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/ab-planner/internal/cleanup"
	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/dispatcher"
	"github.com/pribylovaa/ab-planner/internal/identity"
	"github.com/pribylovaa/ab-planner/internal/metrics"
	logctx "github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/push"
	"github.com/pribylovaa/ab-planner/internal/service"
	"github.com/pribylovaa/ab-planner/internal/storage/postgres"
	"github.com/pribylovaa/ab-planner/internal/tokens"
	plannerhttp "github.com/pribylovaa/ab-planner/internal/transport/http"
	"github.com/pribylovaa/ab-planner/internal/worker"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// .env необязателен: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := logctx.Setup(cfg.Env, os.Stdout)
	slog.SetDefault(log)
	log.Info("starting planner-api", "env", cfg.Env)

	metrics.MustRegister()

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = logctx.Into(rootCtx, log)

	st, err := postgres.New(rootCtx, cfg.DB.DatabaseURL, cfg.DB.MaxConns)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	codec, err := tokens.New(cfg.Auth.SecretKey, tokens.WithIssuer(cfg.Auth.Issuer))
	if err != nil {
		log.Error("token_codec_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	idp := identity.NewMicrosoft(cfg.Microsoft)
	defer idp.Close()

	sender, err := push.NewSender(rootCtx, cfg.Push)
	if err != nil {
		log.Error("push_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	if sender == nil {
		log.Warn("push_disabled")
	}

	svc := service.New(st, codec, idp, cfg.Auth, cfg.Microsoft.RedirectURI)

	apiHandler := plannerhttp.NewRouter(svc, svc, plannerhttp.Options{
		Logger:        log,
		Timeout:       cfg.Timeouts.Request,
		BasePath:      cfg.HTTP.BasePath,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		AuthRateLimit: cfg.HTTP.AuthRateLimit,
	})

	var workers []*worker.Handle
	if cfg.Dispatcher.Enabled {
		d := dispatcher.New(st, sender, cfg.Dispatcher)
		workers = append(workers, worker.Start(rootCtx, "dispatcher", cfg.Dispatcher.Interval, func(ctx context.Context) error {
			_, err := d.RunBatch(ctx)
			return err
		}))
	}
	if cfg.Cleanup.Enabled {
		workers = append(workers, cleanup.New(st, cfg.Cleanup).Start(rootCtx))
	}

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) == 1 && st.Ping(r.Context()) == nil {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("planner_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	// Начатый проход воркера доводится до конца; ждём не дольше таймаута остановки.
	for _, h := range workers {
		go h.Stop()
	}
	for _, h := range workers {
		select {
		case <-h.Done():
		case <-shutdownCtx.Done():
			log.Warn("worker_stop_timeout")
		}
	}

	log.Info("service_stopped")
}
