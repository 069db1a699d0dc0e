package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/mocks"
)

var testNow = time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

func newScheduler(t *testing.T) (*Scheduler, *mocks.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)

	s := New(st, config.CleanupConfig{
		Interval:        time.Hour,
		SessionGrace:    7 * 24 * time.Hour,
		ChangeLogMaxAge: 90 * 24 * time.Hour,
	})
	s.now = func() time.Time { return testNow }
	return s, st
}

func TestRunOnce_OK(t *testing.T) {
	s, st := newScheduler(t)

	st.EXPECT().PruneSessions(gomock.Any(), testNow, 7*24*time.Hour).Return(int64(4), nil)
	st.EXPECT().PruneChangeLogs(gomock.Any(), testNow.Add(-90*24*time.Hour)).Return(int64(2), nil)

	res := s.RunOnce(context.Background())
	require.Equal(t, Result{SessionsPruned: 4, ChangeLogsPruned: 2}, res)
}

func TestRunOnce_SessionFailureDoesNotStopChangeLogs(t *testing.T) {
	s, st := newScheduler(t)

	st.EXPECT().PruneSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	st.EXPECT().PruneChangeLogs(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	res := s.RunOnce(context.Background())
	require.Equal(t, Result{ChangeLogsPruned: 3}, res)
}

func TestRunOnce_BothFail(t *testing.T) {
	s, st := newScheduler(t)

	st.EXPECT().PruneSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("x"))
	st.EXPECT().PruneChangeLogs(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("y"))

	require.Equal(t, Result{}, s.RunOnce(context.Background()))
}

func TestStart_RunsFirstPassImmediately(t *testing.T) {
	s, st := newScheduler(t)

	done := make(chan struct{})
	st.EXPECT().PruneSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	st.EXPECT().PruneChangeLogs(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int64, error) {
		close(done)
		return 0, nil
	})

	h := s.Start(context.Background())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first cleanup pass did not run")
	}
	h.Stop()
}
