package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

const userSelect = `
	SELECT u.id, u.email, u.name, u.role_id, u.created_at, r.id, r.code, r.label
	FROM users u
	JOIN roles r ON r.id = u.role_id
`

// UserByID находит пользователя вместе с ролью.
func (s *Storage) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	return s.scanUser(ctx, op, userSelect+` WHERE u.id = $1`, id)
}

// UserByEmail находит пользователя по email (без учёта регистра).
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	return s.scanUser(ctx, op, userSelect+` WHERE lower(u.email) = lower($1)`, email)
}

func (s *Storage) scanUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.RoleID,
		&u.CreatedAt,
		&u.Role.ID,
		&u.Role.Code,
		&u.Role.Label,
	)
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return &u, nil
}

// CreateUser сохраняет пользователя и заполняет ID/CreatedAt.
// Роль в user.Role должна быть уже загружена вызывающим.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.CreateUser"

	query := `
		INSERT INTO users (email, name, role_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query, user.Email, user.Name, user.RoleID, user.CreatedAt.UTC()).Scan(&user.ID)
	if err != nil {
		return mapWriteErr(op, err)
	}

	return nil
}

// UpdateUserName обновляет отображаемое имя.
func (s *Storage) UpdateUserName(ctx context.Context, id int64, name string) error {
	const op = "storage.postgres.UpdateUserName"

	tag, err := s.db.Exec(ctx, `UPDATE users SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// RoleByCode находит роль по коду.
func (s *Storage) RoleByCode(ctx context.Context, code string) (*models.Role, error) {
	const op = "storage.postgres.RoleByCode"

	var r models.Role
	err := s.db.QueryRow(ctx, `SELECT id, code, label FROM roles WHERE code = $1`, code).
		Scan(&r.ID, &r.Code, &r.Label)
	if err != nil {
		return nil, mapReadErr(op, err)
	}

	return &r, nil
}
