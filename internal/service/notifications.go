package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// NotificationInput — уведомление, создаваемое администратором вручную.
type NotificationInput struct {
	UserID         int64
	Payload        models.Payload
	DeliveryStatus *string
	ReadStatus     *string
	Read           *bool
}

// BroadcastInput — рассылка по учебным группам.
type BroadcastInput struct {
	GroupIDs []int64
	Title    string
	Content  string
	Data     map[string]any
}

// ListNotifications возвращает уведомления пользователя, новые первыми.
// filter.UserID == 0 означает самого актора.
func (s *Service) ListNotifications(ctx context.Context, actor Actor, filter models.NotificationFilter) ([]models.OutboxEntry, error) {
	const op = "service.notifications.ListNotifications"

	userID, err := targetUser(actor, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	filter.UserID = userID

	if filter.DeliveryStatus != nil && !filter.DeliveryStatus.Valid() {
		return nil, fmt.Errorf("%s: %w: delivery_status %q", op, ErrValidation, *filter.DeliveryStatus)
	}
	if filter.ReadStatus != nil && !filter.ReadStatus.Valid() {
		return nil, fmt.Errorf("%s: %w: read_status %q", op, ErrValidation, *filter.ReadStatus)
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	out, err := s.storage.ListNotifications(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if out == nil {
		out = []models.OutboxEntry{}
	}

	return out, nil
}

// CreateNotification ставит в очередь одно уведомление для пользователя.
func (s *Service) CreateNotification(ctx context.Context, actor Actor, in NotificationInput) (*models.OutboxEntry, error) {
	const op = "service.notifications.CreateNotification"

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}
	if in.UserID <= 0 {
		return nil, fmt.Errorf("%s: %w: user_id is required", op, ErrValidation)
	}

	delivery := models.DeliveryQueued
	if in.DeliveryStatus != nil {
		delivery = models.DeliveryStatus(*in.DeliveryStatus)
		if !delivery.Valid() {
			return nil, fmt.Errorf("%s: %w: delivery_status %q", op, ErrValidation, delivery)
		}
	}

	read, err := resolveReadStatus(in.Read, in.ReadStatus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if read == nil {
		unread := models.ReadUnread
		read = &unread
	}

	if _, err := s.storage.UserByID(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	entries, err := s.storage.EnqueueNotifications(ctx, []int64{in.UserID}, in.Payload, delivery, *read, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: no entry created for user %d", op, in.UserID)
	}

	return &entries[0], nil
}

// UpdateNotificationRead меняет статус прочтения. readStatus важнее read;
// хотя бы одно из них должно быть задано.
func (s *Service) UpdateNotificationRead(ctx context.Context, actor Actor, id int64, read *bool, readStatus *string) (*models.OutboxEntry, error) {
	const op = "service.notifications.UpdateNotificationRead"

	status, err := resolveReadStatus(read, readStatus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status == nil {
		return nil, fmt.Errorf("%s: %w: read or read_status is required", op, ErrValidation)
	}

	entry, err := s.storage.NotificationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}
	if entry.UserID != actor.User.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	out, err := s.storage.UpdateNotificationRead(ctx, id, *status, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return out, nil
}

// BroadcastToGroups ставит по одному уведомлению каждому участнику групп
// и пишет запись аудита в той же транзакции.
func (s *Service) BroadcastToGroups(ctx context.Context, actor Actor, in BroadcastInput) (*models.BroadcastResult, error) {
	const op = "service.notifications.BroadcastToGroups"

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	groupIDs := uniquePositive(in.GroupIDs)
	if len(groupIDs) == 0 {
		return nil, fmt.Errorf("%s: %w: group_ids is required", op, ErrValidation)
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%s: %w: title and content are required", op, ErrValidation)
	}

	payload := models.Payload{Title: title, Body: content, Data: in.Data}
	res := &models.BroadcastResult{GroupIDs: groupIDs}

	err := s.storage.WithTx(ctx, func(tx storage.Tx) error {
		members, err := tx.GroupMemberIDs(ctx, groupIDs)
		if err != nil {
			return err
		}

		now := s.now()
		entries, err := tx.EnqueueNotifications(ctx, members, payload, models.DeliveryQueued, models.ReadUnread, now)
		if err != nil {
			return err
		}

		res.UserCount = len(members)
		res.NotificationCount = len(entries)

		return tx.RecordChange(ctx, &models.ChangeLog{
			ActorUserID: actor.User.ID,
			Entity:      "notification",
			Action:      "broadcast",
			NewData: map[string]any{
				"group_ids":          groupIDs,
				"title":              title,
				"user_count":         res.UserCount,
				"notification_count": res.NotificationCount,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func resolveReadStatus(read *bool, readStatus *string) (*models.ReadStatus, error) {
	if readStatus != nil {
		st := models.ReadStatus(*readStatus)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: read_status %q", ErrValidation, *readStatus)
		}
		return &st, nil
	}

	if read != nil {
		st := models.ReadUnread
		if *read {
			st = models.ReadRead
		}
		return &st, nil
	}

	return nil, nil
}

// uniquePositive убирает повторы и неположительные id, сохраняя порядок.
func uniquePositive(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
