package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

const deviceTokenColumns = `id, user_id, token, platform, created_at`

// DeviceTokensByUser возвращает токены устройств пользователя.
func (s *Storage) DeviceTokensByUser(ctx context.Context, userID int64) ([]models.DeviceToken, error) {
	const op = "storage.postgres.DeviceTokensByUser"

	rows, err := s.db.Query(ctx, `SELECT `+deviceTokenColumns+` FROM fcm_tokens WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.DeviceToken
	for rows.Next() {
		t, err := scanDeviceToken(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

// DeviceTokenByID находит токен по id.
func (s *Storage) DeviceTokenByID(ctx context.Context, id int64) (*models.DeviceToken, error) {
	const op = "storage.postgres.DeviceTokenByID"

	t, err := scanDeviceToken(s.db.QueryRow(ctx, `SELECT `+deviceTokenColumns+` FROM fcm_tokens WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return t, nil
}

// DeviceTokenByUserAndToken находит пару (пользователь, токен).
func (s *Storage) DeviceTokenByUserAndToken(ctx context.Context, userID int64, token string) (*models.DeviceToken, error) {
	const op = "storage.postgres.DeviceTokenByUserAndToken"

	query := `SELECT ` + deviceTokenColumns + ` FROM fcm_tokens WHERE user_id = $1 AND token = $2`

	t, err := scanDeviceToken(s.db.QueryRow(ctx, query, userID, token))
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return t, nil
}

// CreateDeviceToken сохраняет токен и заполняет ID.
func (s *Storage) CreateDeviceToken(ctx context.Context, token *models.DeviceToken) error {
	const op = "storage.postgres.CreateDeviceToken"

	query := `
		INSERT INTO fcm_tokens (user_id, token, platform, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query, token.UserID, token.Token, token.Platform, token.CreatedAt.UTC()).Scan(&token.ID)
	if err != nil {
		return mapWriteErr(op, err)
	}

	return nil
}

// UpdateDeviceTokenPlatform обновляет платформу существующего токена.
func (s *Storage) UpdateDeviceTokenPlatform(ctx context.Context, id int64, platform string) (*models.DeviceToken, error) {
	const op = "storage.postgres.UpdateDeviceTokenPlatform"

	query := `UPDATE fcm_tokens SET platform = $2 WHERE id = $1 RETURNING ` + deviceTokenColumns

	t, err := scanDeviceToken(s.db.QueryRow(ctx, query, id, platform))
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return t, nil
}

// DeleteDeviceTokenFromOthers отвязывает значение токена от всех остальных пользователей
// (устройство перешло к другому владельцу).
func (s *Storage) DeleteDeviceTokenFromOthers(ctx context.Context, token string, userID int64) (int64, error) {
	const op = "storage.postgres.DeleteDeviceTokenFromOthers"

	tag, err := s.db.Exec(ctx, `DELETE FROM fcm_tokens WHERE token = $1 AND user_id <> $2`, token, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteDeviceToken удаляет токен по id.
func (s *Storage) DeleteDeviceToken(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteDeviceToken"

	tag, err := s.db.Exec(ctx, `DELETE FROM fcm_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func scanDeviceToken(row pgx.Row) (*models.DeviceToken, error) {
	var t models.DeviceToken
	if err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.Platform, &t.CreatedAt); err != nil {
		return nil, err
	}

	return &t, nil
}
