//go:build unit

package queue_test

import (
	"testing"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	roomID := uuid.New()
	withContact := holder.Reconstruct(nil, "5551234567")
	userID := uuid.New()
	userOnly := holder.Reconstruct(&userID, "")

	t.Run("starts waiting", func(t *testing.T) {
		e, err := queue.NewEntry(roomID, withContact, 1)
		require.NoError(t, err)
		assert.Equal(t, queue.StatusWaiting, e.Status())
		assert.Equal(t, 1, e.Position())
		assert.Nil(t, e.NotifiedAt())
	})

	t.Run("contact required", func(t *testing.T) {
		_, err := queue.NewEntry(roomID, userOnly, 1)
		require.ErrorIs(t, err, queue.ErrContactRequired)
	})

	t.Run("position must be positive", func(t *testing.T) {
		_, err := queue.NewEntry(roomID, withContact, 0)
		require.ErrorIs(t, err, queue.ErrInvalidPosition)
	})
}

func TestEntryCancelIsIdempotent(t *testing.T) {
	now := time.Now()
	e, err := queue.NewEntry(uuid.New(), holder.Reconstruct(nil, "5551234567"), 2)
	require.NoError(t, err)

	assert.True(t, e.Cancel(now))
	assert.Equal(t, queue.StatusCancelled, e.Status())

	later := now.Add(time.Minute)
	assert.False(t, e.Cancel(later))
	assert.Equal(t, queue.StatusCancelled, e.Status())
	assert.Equal(t, now, e.UpdatedAt())
}

func TestEntryCancelLeavesNotifiedAlone(t *testing.T) {
	now := time.Now()
	e, _ := queue.NewEntry(uuid.New(), holder.Reconstruct(nil, "5551234567"), 1)
	require.NoError(t, e.Notify(now))

	assert.False(t, e.Cancel(now))
	assert.Equal(t, queue.StatusNotified, e.Status())
	require.NotNil(t, e.NotifiedAt())
}

func TestEntryTransitions(t *testing.T) {
	tests := []struct {
		from queue.Status
		to   queue.Status
		ok   bool
	}{
		{queue.StatusWaiting, queue.StatusNotified, true},
		{queue.StatusWaiting, queue.StatusCancelled, true},
		{queue.StatusWaiting, queue.StatusExpired, true},
		{queue.StatusNotified, queue.StatusExpired, true},
		{queue.StatusNotified, queue.StatusWaiting, false},
		{queue.StatusCancelled, queue.StatusWaiting, false},
		{queue.StatusExpired, queue.StatusNotified, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}

	e := queue.ReconstructEntry(uuid.New(), 1, uuid.New(), holder.Reconstruct(nil, "5551234567"), 1,
		queue.StatusCancelled, time.Now(), time.Now(), nil)
	require.ErrorIs(t, e.Notify(time.Now()), queue.ErrInvalidTransition)
}

func TestNextPosition(t *testing.T) {
	tests := []struct {
		name         string
		lastAssigned int
		want         int
	}{
		{name: "success: first entry the room ever sees", lastAssigned: 0, want: 1},
		{name: "success: continues after the tail entry cancelled", lastAssigned: 3, want: 4},
		{name: "success: drained line does not restart at 1", lastAssigned: 7, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queue.NextPosition(tt.lastAssigned))
		})
	}
}
