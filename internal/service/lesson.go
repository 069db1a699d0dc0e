package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

const lessonTimeLayout = "2006-01-02 15:04"

var lessonTitles = map[string]string{
	models.LessonCreated: "New lesson scheduled",
	models.LessonUpdated: "Lesson updated",
	models.LessonDeleted: "Lesson canceled",
}

// NotifyLessonChange ставит уведомления об изменении занятия преподавателю
// и участникам группы. Вызывается внутри транзакции, меняющей занятие,
// поэтому уведомления фиксируются вместе с изменением или не появляются вовсе.
// Возвращает число созданных записей.
func (s *Service) NotifyLessonChange(ctx context.Context, tx storage.Tx, change models.LessonChange) (int, error) {
	const op = "service.lesson.NotifyLessonChange"

	lesson := change.Lesson

	var recipients []int64
	if lesson.LecturerUserID > 0 {
		recipients = append(recipients, lesson.LecturerUserID)
	}
	if lesson.GroupID > 0 {
		members, err := tx.GroupMemberIDs(ctx, []int64{lesson.GroupID})
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		recipients = append(recipients, members...)
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	subject, err := tx.SubjectName(ctx, lesson.SubjectID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		subject = "Lesson"
	case err != nil:
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	room, err := tx.RoomLabel(ctx, lesson.RoomID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		room = fmt.Sprintf("Room %d", lesson.RoomID)
	case err != nil:
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	payload := LessonPayload(change, subject, room)

	entries, err := tx.EnqueueNotifications(ctx, recipients, payload, models.DeliveryQueued, models.ReadUnread, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return len(entries), nil
}

// LessonPayload собирает текст и данные push-уведомления об изменении занятия.
func LessonPayload(change models.LessonChange, subject, room string) models.Payload {
	lesson := change.Lesson

	title, ok := lessonTitles[change.Action]
	if !ok {
		title = "Lesson update"
	}

	place := room
	if window := timeWindow(lesson.StartsAt, lesson.EndsAt); window != "" {
		place = window + " @ " + room
	}

	var body string
	switch change.Action {
	case models.LessonCreated:
		body = fmt.Sprintf("%s at %s", subject, place)
	case models.LessonDeleted:
		body = fmt.Sprintf("%s at %s was canceled", subject, place)
	default:
		body = fmt.Sprintf("%s: %s. %s", subject, changedFields(change.Before, lesson), place)
	}

	data := map[string]any{
		"lesson_id":   lesson.ID,
		"group_id":    lesson.GroupID,
		"subject_id":  lesson.SubjectID,
		"room_id":     lesson.RoomID,
		"action":      change.Action,
		"starts_at":   formatInstant(lesson.StartsAt),
		"ends_at":     formatInstant(lesson.EndsAt),
		"status":      lesson.Status,
		"lesson_type": lesson.LessonType,
	}
	if change.Before != nil {
		data["previous"] = previousFields(*change.Before)
	}

	return models.Payload{Title: title, Body: body, Data: data}
}

func timeWindow(start, end time.Time) string {
	switch {
	case start.IsZero():
		return ""
	case end.IsZero():
		return start.Format(lessonTimeLayout)
	default:
		return start.Format(lessonTimeLayout) + " - " + end.Format(lessonTimeLayout)
	}
}

// changedFields перечисляет изменившиеся поля; начало и конец дают одну метку "time".
func changedFields(before *models.LessonSnapshot, after models.LessonSnapshot) string {
	if before == nil {
		return "details updated"
	}

	var labels []string
	add := func(changed bool, label string) {
		if !changed {
			return
		}
		for _, l := range labels {
			if l == label {
				return
			}
		}
		labels = append(labels, label)
	}

	add(!before.StartsAt.Equal(after.StartsAt), "time")
	add(!before.EndsAt.Equal(after.EndsAt), "time")
	add(before.RoomID != after.RoomID, "room")
	add(before.Status != after.Status, "status")
	add(before.LessonType != after.LessonType, "type")

	if len(labels) == 0 {
		return "details updated"
	}

	return strings.Join(labels, ", ")
}

// previousFields — заполненные поля прежнего состояния занятия.
func previousFields(before models.LessonSnapshot) map[string]any {
	prev := make(map[string]any)
	if !before.StartsAt.IsZero() {
		prev["starts_at"] = formatInstant(before.StartsAt)
	}
	if !before.EndsAt.IsZero() {
		prev["ends_at"] = formatInstant(before.EndsAt)
	}
	if before.RoomID > 0 {
		prev["room_id"] = before.RoomID
	}
	if before.Status != "" {
		prev["status"] = before.Status
	}
	if before.LessonType != "" {
		prev["lesson_type"] = before.LessonType
	}

	return prev
}

func formatInstant(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UTC().Format(time.RFC3339)
}
