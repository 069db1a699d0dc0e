package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

func TestIntegration_DeviceToken_Lifecycle(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "d1@uni.edu")
	other := seedUser(t, st, "d2@uni.edu")

	tok := &models.DeviceToken{UserID: other.ID, Token: "fcm-1", Platform: "android", CreatedAt: time.Now()}
	require.NoError(t, st.CreateDeviceToken(ctx, tok))
	require.NotZero(t, tok.ID)

	// токен уникален глобально.
	dup := &models.DeviceToken{UserID: u.ID, Token: "fcm-1", Platform: "ios", CreatedAt: time.Now()}
	require.ErrorIs(t, st.CreateDeviceToken(ctx, dup), storage.ErrAlreadyExists)

	n, err := st.DeleteDeviceTokenFromOthers(ctx, "fcm-1", u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, st.CreateDeviceToken(ctx, dup))

	got, err := st.DeviceTokenByUserAndToken(ctx, u.ID, "fcm-1")
	require.NoError(t, err)
	require.Equal(t, dup.ID, got.ID)

	upd, err := st.UpdateDeviceTokenPlatform(ctx, dup.ID, "web")
	require.NoError(t, err)
	require.Equal(t, "web", upd.Platform)

	list, err := st.DeviceTokensByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = st.DeviceTokensByUser(ctx, other.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, st.DeleteDeviceToken(ctx, dup.ID))
	require.ErrorIs(t, st.DeleteDeviceToken(ctx, dup.ID), storage.ErrNotFound)

	_, err = st.DeviceTokenByID(ctx, dup.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
