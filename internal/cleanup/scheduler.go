// cleanup периодически удаляет отработавшие сессии и старые записи журнала изменений.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/metrics"
	"github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/worker"
)

// Store — операции очистки хранилища.
type Store interface {
	PruneSessions(ctx context.Context, now time.Time, grace time.Duration) (int64, error)
	PruneChangeLogs(ctx context.Context, before time.Time) (int64, error)
}

// Result — число удалённых строк за проход.
type Result struct {
	SessionsPruned   int64 `json:"sessions_pruned"`
	ChangeLogsPruned int64 `json:"change_logs_pruned"`
}

// Scheduler — планировщик очистки.
type Scheduler struct {
	store Store
	cfg   config.CleanupConfig
	now   func() time.Time
}

// New создаёт планировщик.
func New(store Store, cfg config.CleanupConfig) *Scheduler {
	return &Scheduler{
		store: store,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RunOnce выполняет один проход. Ошибка любого шага логируется и не прерывает остальные.
func (s *Scheduler) RunOnce(ctx context.Context) Result {
	const op = "cleanup.RunOnce"

	lg := log.From(ctx)
	now := s.now()
	var res Result

	n, err := s.store.PruneSessions(ctx, now, s.cfg.SessionGrace)
	if err != nil {
		metrics.CleanupFailuresTotal.WithLabelValues("auth_sessions").Inc()
		lg.Error("cleanup_sessions_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	} else {
		res.SessionsPruned = n
		metrics.CleanupPrunedTotal.WithLabelValues("auth_sessions").Add(float64(n))
	}

	n, err = s.store.PruneChangeLogs(ctx, now.Add(-s.cfg.ChangeLogMaxAge))
	if err != nil {
		metrics.CleanupFailuresTotal.WithLabelValues("change_logs").Inc()
		lg.Error("cleanup_change_logs_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	} else {
		res.ChangeLogsPruned = n
		metrics.CleanupPrunedTotal.WithLabelValues("change_logs").Add(float64(n))
	}

	lg.Info("cleanup_done",
		slog.String("op", op),
		slog.Int64("sessions_pruned", res.SessionsPruned),
		slog.Int64("change_logs_pruned", res.ChangeLogsPruned),
	)

	return res
}

// Start запускает проходы с интервалом cfg.Interval; первый проход сразу.
func (s *Scheduler) Start(ctx context.Context) *worker.Handle {
	return worker.Start(ctx, "cleanup", s.cfg.Interval, func(ctx context.Context) error {
		s.RunOnce(ctx)
		return nil
	})
}
