package models

import "time"

// DeliveryStatus — статус доставки записи outbox.
type DeliveryStatus string

const (
	DeliveryQueued DeliveryStatus = "queued"
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// Valid проверяет, что значение из допустимого набора.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryQueued, DeliverySent, DeliveryFailed:
		return true
	}

	return false
}

// ReadStatus — статус прочтения уведомления пользователем.
type ReadStatus string

const (
	ReadUnread ReadStatus = "unread"
	ReadRead   ReadStatus = "read"
)

// Valid проверяет, что значение из допустимого набора.
func (s ReadStatus) Valid() bool {
	return s == ReadUnread || s == ReadRead
}

// Payload — содержимое push-уведомления (JSONB-колонка payload).
type Payload struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// OutboxEntry — строка notification_outbox.
// Инвариант: SentAt != nil тогда и только тогда, когда DeliveryStatus == sent.
type OutboxEntry struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"user_id"`
	Payload        Payload        `json:"payload"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	ReadStatus     ReadStatus     `json:"read_status"`
	ReadAt         *time.Time     `json:"read_at"`
	Attempts       int            `json:"attempts"`
	LastError      *string        `json:"last_error"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAttemptAt  *time.Time     `json:"last_attempt_at"`
	SentAt         *time.Time     `json:"sent_at"`
}

// NotificationFilter — фильтр выборки уведомлений пользователя.
type NotificationFilter struct {
	UserID         int64
	DeliveryStatus *DeliveryStatus
	ReadStatus     *ReadStatus
	Limit          int
}

// ClaimOptions — параметры захвата очереди диспетчером.
//
// Failed-записи попадают в выборку только при IncludeFailed, если
// attempts < MaxAttempts и last_attempt_at <= RetryBefore.
type ClaimOptions struct {
	Limit         int
	IncludeFailed bool
	MaxAttempts   int
	RetryBefore   time.Time
}

// BroadcastResult — итог рассылки по группам.
type BroadcastResult struct {
	GroupIDs          []int64 `json:"group_ids"`
	UserCount         int     `json:"user_count"`
	NotificationCount int     `json:"notification_count"`
}
