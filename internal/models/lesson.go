package models

import "time"

// Действия над занятием, о которых рассылаются уведомления.
const (
	LessonCreated = "created"
	LessonUpdated = "updated"
	LessonDeleted = "deleted"
)

// LessonSnapshot — состояние занятия на момент изменения.
type LessonSnapshot struct {
	ID             int64
	SubjectID      int64
	LecturerUserID int64
	RoomID         int64
	GroupID        int64
	StartsAt       time.Time
	EndsAt         time.Time
	Status         string
	LessonType     string
}

// LessonChange описывает изменение занятия; Before заполняется только для updated.
type LessonChange struct {
	Action string
	Lesson LessonSnapshot
	Before *LessonSnapshot
}
