package postgres

import (
	"context"
	"fmt"
)

// GroupMemberIDs возвращает различных пользователей, выбравших хотя бы одну из групп.
func (s *Storage) GroupMemberIDs(ctx context.Context, groupIDs []int64) ([]int64, error) {
	const op = "storage.postgres.GroupMemberIDs"

	if len(groupIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT DISTINCT user_id
		FROM student_group_selection
		WHERE group_id = ANY($1)
		ORDER BY user_id
	`

	rows, err := s.db.Query(ctx, query, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return ids, nil
}

// SubjectName возвращает название предмета.
func (s *Storage) SubjectName(ctx context.Context, id int64) (string, error) {
	const op = "storage.postgres.SubjectName"

	var name string
	if err := s.db.QueryRow(ctx, `SELECT name FROM subjects WHERE id = $1`, id).Scan(&name); err != nil {
		return "", mapReadErr(op, err)
	}

	return name, nil
}

// RoomLabel возвращает "корпус номер" аудитории.
func (s *Storage) RoomLabel(ctx context.Context, id int64) (string, error) {
	const op = "storage.postgres.RoomLabel"

	var label string
	err := s.db.QueryRow(ctx, `SELECT building || ' ' || number FROM rooms WHERE id = $1`, id).Scan(&label)
	if err != nil {
		return "", mapReadErr(op, err)
	}

	return label, nil
}
