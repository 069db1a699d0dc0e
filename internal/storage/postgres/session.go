package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

const sessionColumns = `id, user_id, token_hash, jti, created_at, expires_at, revoked_at, revoked_reason`

// CreateSession сохраняет новую активную сессию и заполняет ID.
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	const op = "storage.postgres.CreateSession"

	query := `
		INSERT INTO auth_sessions (user_id, token_hash, jti, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		session.UserID,
		session.TokenHash,
		session.JTI,
		session.CreatedAt.UTC(),
		session.ExpiresAt.UTC(),
	).Scan(&session.ID)
	if err != nil {
		return mapWriteErr(op, err)
	}

	return nil
}

// SessionByTokenHash находит сессию по хэшу refresh-токена.
func (s *Storage) SessionByTokenHash(ctx context.Context, hash string) (*models.Session, error) {
	const op = "storage.postgres.SessionByTokenHash"

	return s.scanSession(ctx, op, `SELECT `+sessionColumns+` FROM auth_sessions WHERE token_hash = $1`, hash)
}

// LockSessionByTokenHash блокирует строку сессии до конца транзакции.
// Конкурентная ротация того же токена ждёт и затем видит уже отозванную сессию.
func (s *Storage) LockSessionByTokenHash(ctx context.Context, hash string) (*models.Session, error) {
	const op = "storage.postgres.LockSessionByTokenHash"

	return s.scanSession(ctx, op, `SELECT `+sessionColumns+` FROM auth_sessions WHERE token_hash = $1 FOR UPDATE`, hash)
}

// SessionByJTI находит сессию по jti (проверка access-токена).
func (s *Storage) SessionByJTI(ctx context.Context, jti string) (*models.Session, error) {
	const op = "storage.postgres.SessionByJTI"

	return s.scanSession(ctx, op, `SELECT `+sessionColumns+` FROM auth_sessions WHERE jti = $1`, jti)
}

func (s *Storage) scanSession(ctx context.Context, op, query string, arg any) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.TokenHash,
		&sess.JTI,
		&sess.CreatedAt,
		&sess.ExpiresAt,
		&sess.RevokedAt,
		&sess.RevokedReason,
	)
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return &sess, nil
}

// RevokeSession отзывает сессию, если она ещё не отозвана.
// Возвращает:
//
//	(true, nil)  — сессия была активна и отозвана сейчас;
//	(false, nil) — сессия уже была отозвана, поля не менялись;
//	(false, ErrNotFound) — сессии нет.
func (s *Storage) RevokeSession(ctx context.Context, id int64, reason string, now time.Time) (bool, error) {
	const op = "storage.postgres.RevokeSession"

	const upd = `
		UPDATE auth_sessions
		SET revoked_at = $2, revoked_reason = $3
		WHERE id = $1 AND revoked_at IS NULL
	`

	tag, err := s.db.Exec(ctx, upd, id, now.UTC(), reason)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var exists bool
	err = s.db.QueryRow(ctx, `SELECT TRUE FROM auth_sessions WHERE id = $1`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return false, nil
}

// RevokeAllSessions отзывает все ещё не отозванные сессии пользователя.
func (s *Storage) RevokeAllSessions(ctx context.Context, userID int64, reason string, now time.Time) (int64, error) {
	const op = "storage.postgres.RevokeAllSessions"

	query := `
		UPDATE auth_sessions
		SET revoked_at = $2, revoked_reason = $3
		WHERE user_id = $1 AND revoked_at IS NULL
	`

	tag, err := s.db.Exec(ctx, query, userID, now.UTC(), reason)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// PruneSessions удаляет отозванные истёкшие сессии и сессии,
// истёкшие раньше чем now - grace. Необратимо.
func (s *Storage) PruneSessions(ctx context.Context, now time.Time, grace time.Duration) (int64, error) {
	const op = "storage.postgres.PruneSessions"

	query := `
		DELETE FROM auth_sessions
		WHERE (revoked_at IS NOT NULL AND expires_at < $1)
		   OR expires_at < $2
	`

	tag, err := s.db.Exec(ctx, query, now.UTC(), now.Add(-grace).UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
