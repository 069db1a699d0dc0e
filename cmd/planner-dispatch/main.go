// planner-dispatch выполняет один проход отправки outbox и завершается.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/dispatcher"
	logctx "github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/push"
	"github.com/pribylovaa/ab-planner/internal/storage/postgres"
)

func main() {
	var (
		configPath  string
		limit       int
		retryFailed bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.IntVar(&limit, "limit", 0, "max entries per batch (default from config)")
	flag.BoolVar(&retryFailed, "retry-failed", false, "also retry failed entries")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := logctx.Setup(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	if limit > 0 {
		cfg.Dispatcher.BatchSize = limit
	}
	if retryFailed {
		cfg.Dispatcher.RetryFailed = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logctx.Into(ctx, log)

	os.Exit(run(ctx, log, cfg))
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Config) int {
	st, err := postgres.New(ctx, cfg.DB.DatabaseURL, cfg.DB.MaxConns)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		return 1
	}
	defer st.Close()

	sender, err := push.NewSender(ctx, cfg.Push)
	if err != nil {
		log.Error("push_init_failed", slog.String("err", err.Error()))
		return 1
	}

	sum, err := dispatcher.New(st, sender, cfg.Dispatcher).RunBatch(ctx)
	if err != nil {
		log.Error("dispatch_failed", slog.String("err", err.Error()))
		return 1
	}

	log.Info("dispatch_summary",
		slog.Int("processed", sum.Processed),
		slog.Int("sent", sum.Sent),
		slog.Int("failed", sum.Failed),
		slog.Int("skipped", sum.Skipped),
	)

	return 0
}
