// Package waittime turns the active lease of a room and a count of people ahead
// into a whole-minute wait estimate. It has no feedback from early completion:
// the remaining time of the current lease is always assumed to run to expiry.
package waittime

import "time"

// DefaultPerTurn is the assumed length of each turn waiting ahead.
const DefaultPerTurn = 5 * time.Minute

// Window is the time span of the lease currently holding a room.
type Window struct {
	StartedAt time.Time
	ExpiresAt time.Time
}

type Estimator struct {
	PerTurn time.Duration
}

func NewEstimator(perTurn time.Duration) Estimator {
	if perTurn <= 0 {
		perTurn = DefaultPerTurn
	}
	return Estimator{PerTurn: perTurn}
}

// Minutes returns 0 when the room is free, otherwise the rounded-up minutes left
// on the lease plus one turn for everybody ahead.
func (e Estimator) Minutes(active *Window, ahead int, now time.Time) int {
	if active == nil {
		return 0
	}
	if ahead < 0 {
		ahead = 0
	}

	remaining := 0
	if left := active.ExpiresAt.Sub(now); left > 0 {
		remaining = int((left + time.Minute - 1) / time.Minute)
	}

	perTurn := int(e.PerTurn / time.Minute)
	return remaining + ahead*perTurn
}

// Estimate uses the default five minute turn.
func Estimate(active *Window, ahead int, now time.Time) int {
	return NewEstimator(DefaultPerTurn).Minutes(active, ahead, now)
}
