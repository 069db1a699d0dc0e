// planner-cleanup выполняет один проход очистки сессий и журнала изменений.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pribylovaa/ab-planner/internal/cleanup"
	"github.com/pribylovaa/ab-planner/internal/config"
	logctx "github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/storage/postgres"
)

func main() {
	var (
		configPath string
		grace      time.Duration
		maxAge     time.Duration
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.DurationVar(&grace, "grace", 0, "keep expired/revoked sessions this long (default from config)")
	flag.DurationVar(&maxAge, "max-age", 0, "delete change logs older than this (default from config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := logctx.Setup(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	if grace > 0 {
		cfg.Cleanup.SessionGrace = grace
	}
	if maxAge > 0 {
		cfg.Cleanup.ChangeLogMaxAge = maxAge
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logctx.Into(ctx, log)

	st, err := postgres.New(ctx, cfg.DB.DatabaseURL, cfg.DB.MaxConns)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	defer st.Close()

	// Сбои шагов логируются внутри прохода и в код возврата не попадают.
	cleanup.New(st, cfg.Cleanup).RunOnce(ctx)
}
