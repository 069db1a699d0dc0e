package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

func TestIntegration_Outbox_EnqueueFanOut(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u1 := seedUser(t, st, "o1@uni.edu")
	u2 := seedUser(t, st, "o2@uni.edu")
	u3 := seedUser(t, st, "o3@uni.edu")
	now := time.Now().UTC()

	payload := models.Payload{Title: "T", Body: "B", Data: map[string]any{"lesson_id": float64(7)}}
	entries, err := st.EnqueueNotifications(ctx, []int64{u1.ID, u2.ID, u2.ID, 0, u3.ID}, payload, models.DeliveryQueued, models.ReadUnread, now)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, []int64{u1.ID, u2.ID, u3.ID}, []int64{entries[0].UserID, entries[1].UserID, entries[2].UserID})
	for _, e := range entries {
		require.Equal(t, models.DeliveryQueued, e.DeliveryStatus)
		require.Equal(t, models.ReadUnread, e.ReadStatus)
		require.Zero(t, e.Attempts)
		require.Nil(t, e.ReadAt)
		require.Equal(t, payload, e.Payload)
	}

	empty, err := st.EnqueueNotifications(ctx, nil, payload, models.DeliveryQueued, models.ReadUnread, now)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestIntegration_Outbox_EnqueueRead_SetsReadAt(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "o4@uni.edu")
	now := time.Now().UTC()

	entries, err := st.EnqueueNotifications(ctx, []int64{u.ID}, models.Payload{Title: "x"}, models.DeliverySent, models.ReadRead, now)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].ReadAt)
	require.WithinDuration(t, now, *entries[0].ReadAt, time.Second)
	require.NotNil(t, entries[0].SentAt)
	require.WithinDuration(t, now, *entries[0].SentAt, time.Second)
}

func TestIntegration_Outbox_SentAtOnlyForSent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "o4b@uni.edu")
	now := time.Now().UTC()

	for _, status := range []models.DeliveryStatus{models.DeliveryQueued, models.DeliveryFailed} {
		entries, err := st.EnqueueNotifications(ctx, []int64{u.ID}, models.Payload{Title: "x"}, status, models.ReadUnread, now)
		require.NoError(t, err)
		require.Nil(t, entries[0].SentAt, status)
	}

	// Схема не допускает sent без sent_at.
	_, err := st.pool.Exec(ctx, `INSERT INTO notification_outbox (user_id, payload, delivery_status) VALUES ($1, '{}', 'sent')`, u.ID)
	require.Error(t, err)
}

func TestIntegration_Outbox_ListAndRead(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "o5@uni.edu")
	base := time.Now().UTC()

	for i := 0; i < 3; i++ {
		_, err := st.EnqueueNotifications(ctx, []int64{u.ID}, models.Payload{Title: "n"}, models.DeliveryQueued, models.ReadUnread, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	list, err := st.ListNotifications(ctx, models.NotificationFilter{UserID: u.ID})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.True(t, list[0].CreatedAt.After(list[2].CreatedAt))

	read, err := st.UpdateNotificationRead(ctx, list[0].ID, models.ReadRead, base)
	require.NoError(t, err)
	require.Equal(t, models.ReadRead, read.ReadStatus)
	require.NotNil(t, read.ReadAt)

	rs := models.ReadUnread
	unread, err := st.ListNotifications(ctx, models.NotificationFilter{UserID: u.ID, ReadStatus: &rs, Limit: 10})
	require.NoError(t, err)
	require.Len(t, unread, 2)

	back, err := st.UpdateNotificationRead(ctx, list[0].ID, models.ReadUnread, base)
	require.NoError(t, err)
	require.Nil(t, back.ReadAt)

	_, err = st.UpdateNotificationRead(ctx, 999999, models.ReadRead, base)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.NotificationByID(ctx, 999999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Outbox_ClaimRetryBoundary(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "o6@uni.edu")
	now := time.Now().UTC()

	entries, err := st.EnqueueNotifications(ctx, []int64{u.ID}, models.Payload{Title: "r"}, models.DeliveryQueued, models.ReadUnread, now)
	require.NoError(t, err)
	e := entries[0]

	lastAttempt := now.Add(-10 * time.Minute)
	msg := "NotRegistered"
	e.DeliveryStatus = models.DeliveryFailed
	e.Attempts = 4
	e.LastError = &msg
	e.LastAttemptAt = &lastAttempt
	require.NoError(t, st.SaveDelivery(ctx, &e))

	// без IncludeFailed failed-записи не берутся.
	got, err := st.ClaimDueNotifications(ctx, models.ClaimOptions{Limit: 10, MaxAttempts: 5, RetryBefore: now})
	require.NoError(t, err)
	require.Empty(t, got)

	// backoff ещё не прошёл.
	got, err = st.ClaimDueNotifications(ctx, models.ClaimOptions{Limit: 10, IncludeFailed: true, MaxAttempts: 5, RetryBefore: now.Add(-15 * time.Minute)})
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = st.ClaimDueNotifications(ctx, models.ClaimOptions{Limit: 10, IncludeFailed: true, MaxAttempts: 5, RetryBefore: now.Add(-5 * time.Minute)})
	require.NoError(t, err)
	require.Len(t, got, 1)

	// attempts == MaxAttempts: запись исчерпала попытки.
	e.Attempts = 5
	require.NoError(t, st.SaveDelivery(ctx, &e))
	got, err = st.ClaimDueNotifications(ctx, models.ClaimOptions{Limit: 10, IncludeFailed: true, MaxAttempts: 5, RetryBefore: now})
	require.NoError(t, err)
	require.Empty(t, got)

	missing := models.OutboxEntry{ID: 999999, DeliveryStatus: models.DeliverySent}
	require.ErrorIs(t, st.SaveDelivery(ctx, &missing), storage.ErrNotFound)
}

func TestIntegration_Outbox_ClaimSkipLocked(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "o7@uni.edu")
	now := time.Now().UTC()

	_, err := st.EnqueueNotifications(ctx, []int64{u.ID}, models.Payload{Title: "a"}, models.DeliveryQueued, models.ReadUnread, now)
	require.NoError(t, err)
	_, err = st.EnqueueNotifications(ctx, []int64{u.ID}, models.Payload{Title: "b"}, models.DeliveryQueued, models.ReadUnread, now.Add(time.Second))
	require.NoError(t, err)

	tx1, err := st.pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx1.Rollback(ctx) }()
	tx2, err := st.pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx2.Rollback(ctx) }()

	first, err := (&Storage{pool: st.pool, db: tx1}).ClaimDueNotifications(ctx, models.ClaimOptions{Limit: 1, RetryBefore: now})
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, "a", first[0].Payload.Title)

	second, err := (&Storage{pool: st.pool, db: tx2}).ClaimDueNotifications(ctx, models.ClaimOptions{Limit: 10, RetryBefore: now})
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, "b", second[0].Payload.Title)
}
