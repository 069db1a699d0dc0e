package models

import "time"

// Коды ролей, с которыми допускается работа с API.
const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
)

// Role — роль пользователя (справочник roles).
type Role struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

// User — локальный пользователь; роль подгружается вместе с пользователем.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	RoleID    int64     `json:"role_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile возвращает публичное представление пользователя.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.Code,
	}
}

// UserProfile — данные пользователя, отдаваемые вместе с токенами.
type UserProfile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
