package models

import "time"

// Session — запись о выданном refresh-токене (таблица auth_sessions).
// Хранится только хэш токена; сам токен нигде не сохраняется.
type Session struct {
	ID            int64
	UserID        int64
	TokenHash     string
	JTI           string
	CreatedAt     time.Time
	ExpiresAt     time.Time
	RevokedAt     *time.Time
	RevokedReason *string
}

// Revoked сообщает, отозвана ли сессия.
func (s *Session) Revoked() bool {
	return s.RevokedAt != nil
}

// Expired — срок жизни истёк (now >= expires_at).
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Active — не отозвана и не истекла.
func (s *Session) Active(now time.Time) bool {
	return !s.Revoked() && !s.Expired(now)
}
