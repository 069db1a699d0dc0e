package models

import "time"

// ChangeLog — запись аудита изменений (таблица change_logs).
type ChangeLog struct {
	ID          int64
	ActorUserID int64
	Entity      string
	EntityID    int64
	Action      string
	OldData     map[string]any
	NewData     map[string]any
	CreatedAt   time.Time
}
