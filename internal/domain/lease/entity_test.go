//go:build unit

package lease_test

import (
	"testing"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/lease"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLease(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := holder.Reconstruct(nil, "5551234567")

	t.Run("active for five minutes", func(t *testing.T) {
		l, err := lease.NewLease(uuid.New(), h, now, lease.DefaultDuration)
		require.NoError(t, err)

		assert.Equal(t, lease.StatusActive, l.Status())
		assert.Equal(t, now.Add(5*time.Minute), l.ExpiresAt())
		assert.True(t, l.IsActiveAt(now.Add(4*time.Minute+59*time.Second)))
		assert.False(t, l.IsActiveAt(now.Add(5*time.Minute)))
		assert.Equal(t, 2*time.Minute, l.RemainingAt(now.Add(3*time.Minute)))
		assert.Zero(t, l.RemainingAt(now.Add(10*time.Minute)))
	})

	t.Run("rejects missing room", func(t *testing.T) {
		_, err := lease.NewLease(uuid.Nil, h, now, lease.DefaultDuration)
		require.ErrorIs(t, err, lease.ErrMissingRoom)
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		_, err := lease.NewLease(uuid.New(), h, now, 0)
		require.ErrorIs(t, err, lease.ErrInvalidDuration)
	})
}

func TestLeaseTransitions(t *testing.T) {
	now := time.Now()
	h := holder.Reconstruct(nil, "5551234567")

	l, err := lease.NewLease(uuid.New(), h, now, lease.DefaultDuration)
	require.NoError(t, err)

	require.NoError(t, l.Complete())
	assert.True(t, l.Status().IsTerminal())
	assert.False(t, l.IsActiveAt(now))

	require.ErrorIs(t, l.Complete(), lease.ErrNotActive)
	require.ErrorIs(t, l.Expire(), lease.ErrNotActive)

	l2, _ := lease.NewLease(uuid.New(), h, now, lease.DefaultDuration)
	require.NoError(t, l2.Expire())
	assert.Equal(t, lease.StatusExpired, l2.Status())
}
