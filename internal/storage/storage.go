// storage описывает контракты хранилища планировщика и общие ошибки слоя.
//
// Реляционная БД — единственный источник истины и точка синхронизации:
// захват очереди outbox и ротация сессий опираются на блокировки строк,
// а не на мьютексы процесса.
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/ab-planner/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — нарушение внешнего ключа (ссылка на отсутствующую/используемую запись).
	ErrConflict = errors.New("conflict")
)

// UserStorage — пользователи и роли (чтение и get-or-create при входе).
type UserStorage interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserName(ctx context.Context, id int64, name string) error
	RoleByCode(ctx context.Context, code string) (*models.Role, error)
}

// SessionStorage — сессии refresh-токенов.
type SessionStorage interface {
	CreateSession(ctx context.Context, session *models.Session) error
	SessionByTokenHash(ctx context.Context, hash string) (*models.Session, error)
	// LockSessionByTokenHash — то же, что SessionByTokenHash, но с SELECT ... FOR UPDATE.
	// Имеет смысл только внутри WithTx.
	LockSessionByTokenHash(ctx context.Context, hash string) (*models.Session, error)
	SessionByJTI(ctx context.Context, jti string) (*models.Session, error)
	// RevokeSession идемпотентна: уже отозванная сессия не меняется.
	// Возвращает true, только если отзыв выполнен этим вызовом.
	RevokeSession(ctx context.Context, id int64, reason string, now time.Time) (bool, error)
	RevokeAllSessions(ctx context.Context, userID int64, reason string, now time.Time) (int64, error)
	PruneSessions(ctx context.Context, now time.Time, grace time.Duration) (int64, error)
}

// OutboxStorage — очередь уведомлений notification_outbox.
type OutboxStorage interface {
	EnqueueNotifications(ctx context.Context, userIDs []int64, payload models.Payload,
		delivery models.DeliveryStatus, read models.ReadStatus, now time.Time) ([]models.OutboxEntry, error)
	ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.OutboxEntry, error)
	NotificationByID(ctx context.Context, id int64) (*models.OutboxEntry, error)
	UpdateNotificationRead(ctx context.Context, id int64, read models.ReadStatus, now time.Time) (*models.OutboxEntry, error)
	// ClaimDueNotifications выбирает записи с FOR UPDATE SKIP LOCKED; вызывать внутри WithTx.
	ClaimDueNotifications(ctx context.Context, opts models.ClaimOptions) ([]models.OutboxEntry, error)
	SaveDelivery(ctx context.Context, entry *models.OutboxEntry) error
}

// DeviceTokenStorage — FCM-токены устройств.
type DeviceTokenStorage interface {
	DeviceTokensByUser(ctx context.Context, userID int64) ([]models.DeviceToken, error)
	DeviceTokenByID(ctx context.Context, id int64) (*models.DeviceToken, error)
	DeviceTokenByUserAndToken(ctx context.Context, userID int64, token string) (*models.DeviceToken, error)
	CreateDeviceToken(ctx context.Context, token *models.DeviceToken) error
	UpdateDeviceTokenPlatform(ctx context.Context, id int64, platform string) (*models.DeviceToken, error)
	// DeleteDeviceTokenFromOthers удаляет значение токена у всех пользователей, кроме userID.
	DeleteDeviceTokenFromOthers(ctx context.Context, token string, userID int64) (int64, error)
	DeleteDeviceToken(ctx context.Context, id int64) error
}

// CatalogStorage — чтение справочных данных расписания, нужных уведомлениям.
type CatalogStorage interface {
	GroupMemberIDs(ctx context.Context, groupIDs []int64) ([]int64, error)
	SubjectName(ctx context.Context, id int64) (string, error)
	RoomLabel(ctx context.Context, id int64) (string, error)
}

// AuditStorage — журнал изменений (только запись и очистка по сроку).
type AuditStorage interface {
	RecordChange(ctx context.Context, entry *models.ChangeLog) error
	PruneChangeLogs(ctx context.Context, before time.Time) (int64, error)
}

// Tx — операции, доступные и на пуле, и внутри транзакции.
//
// WithTx открывает транзакцию (на пуле) или точку сохранения (внутри транзакции)
// и фиксирует её, если fn вернула nil.
type Tx interface {
	UserStorage
	SessionStorage
	OutboxStorage
	DeviceTokenStorage
	CatalogStorage
	AuditStorage

	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Storage — хранилище целиком.
type Storage interface {
	Tx
	Close()
}
