package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

const outboxColumns = `id, user_id, payload, delivery_status, read_status, read_at,
	attempts, last_error, created_at, last_attempt_at, sent_at`

// EnqueueNotifications ставит в очередь по одной записи на пользователя.
// Повторяющиеся и неположительные id пропускаются, порядок первого появления сохраняется.
// read_at и sent_at выставляются сразу, если запись создаётся прочитанной
// или уже доставленной.
func (s *Storage) EnqueueNotifications(
	ctx context.Context,
	userIDs []int64,
	payload models.Payload,
	delivery models.DeliveryStatus,
	read models.ReadStatus,
	now time.Time,
) ([]models.OutboxEntry, error) {
	const op = "storage.postgres.EnqueueNotifications"

	ids := uniqueIDs(userIDs)
	if len(ids) == 0 {
		return nil, nil
	}

	var readAt *time.Time
	if read == models.ReadRead {
		ts := now.UTC()
		readAt = &ts
	}

	var sentAt *time.Time
	if delivery == models.DeliverySent {
		ts := now.UTC()
		sentAt = &ts
	}

	query := `
		INSERT INTO notification_outbox (user_id, payload, delivery_status, read_status, read_at, sent_at, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
		RETURNING ` + outboxColumns

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id, payload, string(delivery), string(read), readAt, sentAt, now.UTC())
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	entries := make([]models.OutboxEntry, 0, len(ids))
	for i := range ids {
		entry, err := scanEntry(br.QueryRow())
		if err != nil {
			return nil, mapWriteErr(fmt.Sprintf("%s: batch item %d", op, i), err)
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// ListNotifications возвращает уведомления пользователя, новые сверху.
func (s *Storage) ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.OutboxEntry, error) {
	const op = "storage.postgres.ListNotifications"

	var (
		where = []string{"user_id = $1"}
		args  = []any{filter.UserID}
	)
	if filter.DeliveryStatus != nil {
		args = append(args, string(*filter.DeliveryStatus))
		where = append(where, fmt.Sprintf("delivery_status = $%d", len(args)))
	}
	if filter.ReadStatus != nil {
		args = append(args, string(*filter.ReadStatus))
		where = append(where, fmt.Sprintf("read_status = $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	query := `SELECT ` + outboxColumns + `
		FROM notification_outbox
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC, id DESC
		LIMIT $` + fmt.Sprint(len(args))

	return s.queryEntries(ctx, op, query, args...)
}

// NotificationByID находит запись outbox.
func (s *Storage) NotificationByID(ctx context.Context, id int64) (*models.OutboxEntry, error) {
	const op = "storage.postgres.NotificationByID"

	entry, err := scanEntry(s.db.QueryRow(ctx, `SELECT `+outboxColumns+` FROM notification_outbox WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return entry, nil
}

// UpdateNotificationRead меняет статус прочтения: read_at = now при переходе в read,
// NULL во всех остальных случаях.
func (s *Storage) UpdateNotificationRead(ctx context.Context, id int64, read models.ReadStatus, now time.Time) (*models.OutboxEntry, error) {
	const op = "storage.postgres.UpdateNotificationRead"

	query := `
		UPDATE notification_outbox
		SET read_status = $2,
		    read_at = CASE WHEN $2 = 'read' THEN COALESCE(read_at, $3) ELSE NULL END
		WHERE id = $1
		RETURNING ` + outboxColumns

	entry, err := scanEntry(s.db.QueryRow(ctx, query, id, string(read), now.UTC()))
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return entry, nil
}

// ClaimDueNotifications захватывает записи к отправке.
//
// Queued-записи выбираются всегда; failed — только при IncludeFailed,
// пока attempts < MaxAttempts и с последней попытки прошёл backoff.
// FOR UPDATE SKIP LOCKED не даёт двум диспетчерам взять одну запись.
func (s *Storage) ClaimDueNotifications(ctx context.Context, opts models.ClaimOptions) ([]models.OutboxEntry, error) {
	const op = "storage.postgres.ClaimDueNotifications"

	query := `SELECT ` + outboxColumns + `
		FROM notification_outbox
		WHERE delivery_status = 'queued'
		   OR ($2 AND delivery_status = 'failed'
		       AND attempts < $3
		       AND (last_attempt_at IS NULL OR last_attempt_at <= $4))
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	return s.queryEntries(ctx, op, query, opts.Limit, opts.IncludeFailed, opts.MaxAttempts, opts.RetryBefore.UTC())
}

// SaveDelivery сохраняет результат попытки доставки.
func (s *Storage) SaveDelivery(ctx context.Context, entry *models.OutboxEntry) error {
	const op = "storage.postgres.SaveDelivery"

	query := `
		UPDATE notification_outbox
		SET delivery_status = $2,
		    attempts = $3,
		    last_error = $4,
		    last_attempt_at = $5,
		    sent_at = $6
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		entry.ID,
		string(entry.DeliveryStatus),
		entry.Attempts,
		entry.LastError,
		entry.LastAttemptAt,
		entry.SentAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) queryEntries(ctx context.Context, op, query string, args ...any) ([]models.OutboxEntry, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.OutboxEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

func scanEntry(row pgx.Row) (*models.OutboxEntry, error) {
	var (
		e        models.OutboxEntry
		delivery string
		read     string
	)

	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Payload,
		&delivery,
		&read,
		&e.ReadAt,
		&e.Attempts,
		&e.LastError,
		&e.CreatedAt,
		&e.LastAttemptAt,
		&e.SentAt,
	)
	if err != nil {
		return nil, err
	}

	e.DeliveryStatus = models.DeliveryStatus(delivery)
	e.ReadStatus = models.ReadStatus(read)

	return &e, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))

	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
