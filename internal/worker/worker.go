// worker запускает периодические фоновые задачи (отправка outbox, очистка).
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pribylovaa/ab-planner/internal/pkg/log"
)

// Func — один проход задачи.
type Func func(ctx context.Context) error

// minInterval заменяет неположительный интервал: time.NewTicker на нём паникует.
const minInterval = time.Second

// Handle управляет запущенным воркером.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start запускает fn сразу и затем на каждом тике interval.
//
// Проход выполняется с context.WithoutCancel(ctx): остановка не прерывает
// начатый проход и наблюдается только между запусками. Ошибки и паники fn
// логируются и не останавливают цикл.
func Start(ctx context.Context, name string, interval time.Duration, fn Func) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	lg := log.From(ctx).With(slog.String("worker", name))
	if interval <= 0 {
		lg.Warn("worker_interval_clamped",
			slog.Duration("requested", interval),
			slog.Duration("interval", minInterval),
		)
		interval = minInterval
	}
	runCtx := log.Into(context.WithoutCancel(ctx), lg)

	go func() {
		defer close(h.done)

		lg.Info("worker_start", slog.Duration("interval", interval))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		runOnce(runCtx, lg, fn)

		for {
			select {
			case <-ctx.Done():
				lg.Info("worker_stop")
				return
			case <-ticker.C:
				runOnce(runCtx, lg, fn)
			}
		}
	}()

	return h
}

func runOnce(ctx context.Context, lg *slog.Logger, fn Func) {
	defer func() {
		if rec := recover(); rec != nil {
			lg.Error("worker_panic", slog.String("panic", fmt.Sprint(rec)))
		}
	}()

	if err := fn(ctx); err != nil {
		lg.Error("worker_run_failed", slog.String("err", err.Error()))
	}
}

// Stop сигнализирует остановку и ждёт завершения текущего прохода. Повторный вызов безопасен.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done закрывается после выхода воркера.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
