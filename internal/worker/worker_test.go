package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStart_RunsImmediatelyAndOnTick(t *testing.T) {
	var calls atomic.Int32

	h := Start(context.Background(), "test", 10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	defer h.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestStart_FirstRunBeforeFirstTick(t *testing.T) {
	ran := make(chan struct{}, 1)

	h := Start(context.Background(), "test", time.Hour, func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})
	defer h.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("fn was not run at start")
	}
}

func TestStart_ErrorsAndPanicsSwallowed(t *testing.T) {
	var calls atomic.Int32

	h := Start(context.Background(), "test", 5*time.Millisecond, func(ctx context.Context) error {
		n := calls.Add(1)
		if n == 1 {
			panic("boom")
		}
		return errors.New("failed")
	})
	defer h.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestStop_WaitsForInFlightRun(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	var ctxErr atomic.Value

	h := Start(context.Background(), "test", time.Hour, func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		if err := ctx.Err(); err != nil {
			ctxErr.Store(err)
		}
		finished.Store(true)
		return nil
	})

	<-started
	h.Stop()

	require.True(t, finished.Load())
	require.Nil(t, ctxErr.Load(), "in-flight run must not observe cancellation")

	// повторный Stop не блокируется.
	h.Stop()
}

func TestStart_ParentCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := Start(ctx, "test", 5*time.Millisecond, func(ctx context.Context) error { return nil })
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on parent cancel")
	}
}

func TestStart_NonPositiveIntervalIsClamped(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Minute} {
		ran := make(chan struct{}, 1)

		h := Start(context.Background(), "test", interval, func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		})

		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatalf("fn was not run with interval %v", interval)
		}

		h.Stop()
		select {
		case <-h.Done():
		default:
			t.Fatal("worker still running after Stop")
		}
	}
}
