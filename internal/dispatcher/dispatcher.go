// dispatcher отправляет накопленные в outbox уведомления на устройства пользователей.
//
// Захват, отправка и запись результата выполняются одной транзакцией:
// строки остаются заблокированными (FOR UPDATE SKIP LOCKED) до фиксации,
// поэтому несколько диспетчеров не берут одну запись одновременно.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/metrics"
	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/pkg/redact"
	"github.com/pribylovaa/ab-planner/internal/push"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

// Summary — итог одного прохода.
// Processed = Sent + Failed. Записи без токенов устройств помечаются sent
// и входят в Sent; Skipped отдельно показывает, сколько из них было таких.
type Summary struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeFailed
	outcomeSkipped
)

// Dispatcher — обработчик очереди notification_outbox.
type Dispatcher struct {
	storage storage.Tx
	sender  push.Sender
	cfg     config.DispatcherConfig
	now     func() time.Time
}

// Option настраивает Dispatcher.
type Option func(*Dispatcher)

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// New создаёт диспетчер. sender может быть nil: тогда проходы ничего не делают.
func New(st storage.Tx, sender push.Sender, cfg config.DispatcherConfig, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		storage: st,
		sender:  sender,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// RunBatch захватывает до BatchSize записей и пытается доставить каждую.
// Ошибка одной записи фиксируется в ней (failed, last_error) и не прерывает проход.
// Ошибка возвращается только при сбое захвата или фиксации транзакции.
func (d *Dispatcher) RunBatch(ctx context.Context) (Summary, error) {
	const op = "dispatcher.RunBatch"

	lg := log.From(ctx)
	var sum Summary

	if d.sender == nil {
		lg.Warn("missing_credentials",
			slog.String("op", op),
			slog.String("hint", "set FCM_SERVICE_ACCOUNT_JSON or FCM_SERVER_KEY"),
		)
		metrics.DispatchBatchesTotal.WithLabelValues("skipped").Inc()
		return sum, nil
	}

	now := d.now()
	opts := models.ClaimOptions{
		Limit:         d.cfg.BatchSize,
		IncludeFailed: d.cfg.RetryFailed,
		MaxAttempts:   d.cfg.MaxAttempts,
		RetryBefore:   now.Add(-d.cfg.RetryBackoff),
	}

	err := d.storage.WithTx(ctx, func(tx storage.Tx) error {
		entries, err := tx.ClaimDueNotifications(ctx, opts)
		if err != nil {
			return fmt.Errorf("claim: %w", err)
		}

		for _, entry := range entries {
			res, err := d.process(ctx, tx, entry, now)
			if err != nil {
				lg.Error("dispatch_entry_failed",
					slog.String("op", op),
					slog.Int64("notification_id", entry.ID),
					slog.String("err", err.Error()),
				)

				if err := tx.SaveDelivery(ctx, failedAttempt(entry, now, err.Error())); err != nil {
					return fmt.Errorf("save failed entry %d: %w", entry.ID, err)
				}
				res = outcomeFailed
			}

			sum.Processed++
			switch res {
			case outcomeSent:
				sum.Sent++
				metrics.DispatchEntriesTotal.WithLabelValues("sent").Inc()
			case outcomeFailed:
				sum.Failed++
				metrics.DispatchEntriesTotal.WithLabelValues("failed").Inc()
			case outcomeSkipped:
				sum.Sent++
				sum.Skipped++
				metrics.DispatchEntriesTotal.WithLabelValues("skipped").Inc()
			}
		}

		return nil
	})
	if err != nil {
		metrics.DispatchBatchesTotal.WithLabelValues("error").Inc()
		return Summary{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.DispatchBatchesTotal.WithLabelValues("ok").Inc()
	lg.Info("dispatch_batch_done",
		slog.String("op", op),
		slog.Int("processed", sum.Processed),
		slog.Int("sent", sum.Sent),
		slog.Int("failed", sum.Failed),
		slog.Int("skipped", sum.Skipped),
	)

	return sum, nil
}

// process доставляет одну запись в собственной точке сохранения.
func (d *Dispatcher) process(ctx context.Context, tx storage.Tx, entry models.OutboxEntry, now time.Time) (outcome, error) {
	var res outcome

	err := tx.WithTx(ctx, func(tx storage.Tx) error {
		entry.Attempts++
		entry.LastAttemptAt = &now

		tokens, err := tx.DeviceTokensByUser(ctx, entry.UserID)
		if err != nil {
			return fmt.Errorf("device tokens: %w", err)
		}

		if len(tokens) == 0 {
			markSent(&entry, now)
			res = outcomeSkipped
			return tx.SaveDelivery(ctx, &entry)
		}

		msg := push.Message{
			Title: entry.Payload.Title,
			Body:  entry.Payload.Body,
			Data:  entry.Payload.Data,
		}

		var (
			successes int
			lastErr   string
		)
		for _, tok := range tokens {
			err := d.sender.Send(ctx, tok.Token, msg)
			if err == nil {
				successes++
				metrics.PushDeliveriesTotal.WithLabelValues("ok").Inc()
				continue
			}

			lastErr = push.ErrorCode(err)

			if !push.IsUnregistered(err) {
				result := "transport"
				var de *push.DeliveryError
				if errors.As(err, &de) {
					result = "rejected"
				}
				metrics.PushDeliveriesTotal.WithLabelValues(result).Inc()
				continue
			}

			metrics.PushDeliveriesTotal.WithLabelValues("unregistered").Inc()
			log.From(ctx).Info("device_token_unregistered",
				slog.Int64("user_id", entry.UserID),
				slog.Int64("device_token_id", tok.ID),
				slog.String("token", redact.Tail(tok.Token, 6)),
			)
			if err := tx.DeleteDeviceToken(ctx, tok.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("delete device token %d: %w", tok.ID, err)
			}
		}

		if successes > 0 {
			markSent(&entry, now)
			res = outcomeSent
		} else {
			entry.DeliveryStatus = models.DeliveryFailed
			entry.SentAt = nil
			entry.LastError = &lastErr
			res = outcomeFailed
		}

		return tx.SaveDelivery(ctx, &entry)
	})

	return res, err
}

func markSent(entry *models.OutboxEntry, now time.Time) {
	entry.DeliveryStatus = models.DeliverySent
	entry.SentAt = &now
	entry.LastError = nil
}

// failedAttempt — запись попытки, точка сохранения которой откатилась.
func failedAttempt(entry models.OutboxEntry, now time.Time, reason string) *models.OutboxEntry {
	entry.Attempts++
	entry.LastAttemptAt = &now
	entry.DeliveryStatus = models.DeliveryFailed
	entry.SentAt = nil
	entry.LastError = &reason

	return &entry
}
