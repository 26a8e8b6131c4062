// Package occupancy classifies store-wide load from the number of active leases
// and waiting entries.
package occupancy

import "math"

type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

const (
	highQueueAbove = 2
	highUsersAbove = 4
	lowUsersBelow  = 3
)

func (l Level) String() string {
	return string(l)
}

func Classify(currentUsers, queueLength int) Level {
	switch {
	case queueLength > highQueueAbove && currentUsers > highUsersAbove:
		return LevelHigh
	case queueLength == 0 && currentUsers < lowUsersBelow:
		return LevelLow
	default:
		return LevelModerate
	}
}

// AverageWaitMinutes averages the remaining minutes of active leases, then adds
// one turn per waiting entry spread across the active rooms.
func AverageWaitMinutes(remainingMinutes []int, queueLength, activeRooms, perTurnMinutes int) int {
	base := 0
	if len(remainingMinutes) > 0 {
		sum := 0
		for _, m := range remainingMinutes {
			sum += m
		}
		base = int(math.Round(float64(sum) / float64(len(remainingMinutes))))
	}

	if activeRooms < 1 {
		activeRooms = 1
	}
	turns := (queueLength + activeRooms - 1) / activeRooms
	return base + turns*perTurnMinutes
}
