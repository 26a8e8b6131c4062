//go:build unit

package waittime_test

import (
	"testing"
	"time"

	"fittingroom/internal/domain/waittime"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	window := func(left time.Duration) *waittime.Window {
		return &waittime.Window{StartedAt: now.Add(left - 5*time.Minute), ExpiresAt: now.Add(left)}
	}

	tests := []struct {
		name   string
		active *waittime.Window
		ahead  int
		want   int
	}{
		{name: "free room", active: nil, ahead: 3, want: 0},
		{name: "lease just started, nobody ahead", active: window(5 * time.Minute), ahead: 0, want: 5},
		{name: "partial minute rounds up", active: window(4*time.Minute + time.Second), ahead: 0, want: 5},
		{name: "two ahead with three minutes left", active: window(3 * time.Minute), ahead: 2, want: 13},
		{name: "overdue lease counts as zero", active: window(-time.Minute), ahead: 1, want: 5},
		{name: "negative ahead clamped", active: window(time.Minute), ahead: -2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, waittime.Estimate(tt.active, tt.ahead, now))
		})
	}
}

func TestEstimateMonotonicInAhead(t *testing.T) {
	now := time.Now()
	active := &waittime.Window{StartedAt: now, ExpiresAt: now.Add(150 * time.Second)}

	prev := -1
	for ahead := 0; ahead < 50; ahead++ {
		got := waittime.Estimate(active, ahead, now)
		assert.GreaterOrEqual(t, got, prev, "ahead=%d", ahead)
		prev = got
	}
}

func TestEstimatorCustomTurn(t *testing.T) {
	now := time.Now()
	e := waittime.NewEstimator(3 * time.Minute)
	active := &waittime.Window{StartedAt: now, ExpiresAt: now.Add(time.Minute)}
	assert.Equal(t, 7, e.Minutes(active, 2, now))

	assert.Equal(t, waittime.DefaultPerTurn, waittime.NewEstimator(0).PerTurn)
}
