//go:build unit

package projection_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/usecase/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestView_RefreshKeepsLastKnownValue(t *testing.T) {
	var (
		calls int32
		fail  atomic.Bool
	)
	load := func(context.Context) (int, error) {
		n := atomic.AddInt32(&calls, 1)
		if fail.Load() {
			return 0, errors.New("store down")
		}
		return int(n), nil
	}
	v := projection.NewView("counter", load, discardLogger())

	_, ok := v.Value()
	assert.False(t, ok, "nothing loaded yet")

	got, ok := v.Refresh(context.Background())
	require.True(t, ok)
	assert.Equal(t, 1, got)

	fail.Store(true)
	got, ok = v.Refresh(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 1, got, "failed reload must keep previous value")

	fail.Store(false)
	got, ok = v.Refresh(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestView_RefreshBeforeFirstSuccess(t *testing.T) {
	load := func(context.Context) (string, error) { return "", errors.New("store down") }
	v := projection.NewView("empty", load, discardLogger())

	got, ok := v.Refresh(context.Background())
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestView_FollowPushesSnapshotThenEverySignal(t *testing.T) {
	var calls int32
	load := func(context.Context) (int32, error) { return atomic.AddInt32(&calls, 1), nil }
	v := projection.NewView("follow", load, discardLogger())

	signals := make(chan changefeed.Event, 1)
	emitted := make(chan int32, 8)
	done := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		done <- v.Follow(ctx, signals, 0, func(n int32) error {
			emitted <- n
			return nil
		})
	}()

	assert.Equal(t, int32(1), <-emitted, "initial snapshot")

	signals <- changefeed.Event{Table: changefeed.TableLeases}
	assert.Equal(t, int32(2), <-emitted)

	close(signals)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Follow did not return after the signal channel closed")
	}
}

func TestView_FollowHeartbeat(t *testing.T) {
	load := func(context.Context) (bool, error) { return true, nil }
	v := projection.NewView("heartbeat", load, discardLogger())

	var pushes int32
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- v.Follow(ctx, make(chan changefeed.Event), 10*time.Millisecond, func(bool) error {
			if atomic.AddInt32(&pushes, 1) >= 3 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("heartbeat never fired")
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&pushes), int32(3))
}

func TestView_FollowStopsOnEmitError(t *testing.T) {
	load := func(context.Context) (int, error) { return 1, nil }
	v := projection.NewView("broken-client", load, discardLogger())

	clientGone := errors.New("client gone")
	err := v.Follow(context.Background(), make(chan changefeed.Event), 0, func(int) error { return clientGone })
	assert.ErrorIs(t, err, clientGone)
}
