package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/ab-planner/internal/models"
)

// RecordChange пишет запись журнала изменений. Журнал только пополняется
// и очищается по сроку, содержимое old/new данных не интерпретируется.
func (s *Storage) RecordChange(ctx context.Context, entry *models.ChangeLog) error {
	const op = "storage.postgres.RecordChange"

	query := `
		INSERT INTO change_logs (actor_user_id, entity, entity_id, action, old_data, new_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		entry.ActorUserID,
		entry.Entity,
		entry.EntityID,
		entry.Action,
		jsonOrNil(entry.OldData),
		jsonOrNil(entry.NewData),
		entry.CreatedAt.UTC(),
	).Scan(&entry.ID)
	if err != nil {
		return mapWriteErr(op, err)
	}

	return nil
}

// PruneChangeLogs удаляет записи старше before.
func (s *Storage) PruneChangeLogs(ctx context.Context, before time.Time) (int64, error) {
	const op = "storage.postgres.PruneChangeLogs"

	tag, err := s.db.Exec(ctx, `DELETE FROM change_logs WHERE created_at < $1`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// jsonOrNil — пустой map пишем как SQL NULL, а не как '{}'.
func jsonOrNil(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}

	return m
}
