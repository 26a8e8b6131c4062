package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Promotion is what the contact notifier hands to the outbound channel when a
// waiting holder is moved to notified. Delivery itself happens elsewhere.
type Promotion struct {
	EntryID       uuid.UUID  `json:"entryId"`
	RoomID        uuid.UUID  `json:"roomId"`
	HolderUserID  *uuid.UUID `json:"holderUserId,omitempty"`
	HolderContact string     `json:"holderContact"`
	Position      int        `json:"position"`
	NotifiedAt    time.Time  `json:"notifiedAt"`
	RespondBy     time.Time  `json:"respondBy"`
}

type ContactNotifier interface {
	NotifyPromoted(ctx context.Context, p Promotion) error
}

// Lease attempt outcomes recorded by Metrics.
const (
	OutcomeGranted  = "granted"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type Metrics interface {
	LeaseAttempt(outcome string)
	LeaseReleased()
	LeasesExpired(n int)
	QueueJoined()
	QueueCancelled()
	QueuePromoted()
	NotifiedExpired(n int)
	ChangePublished(table string, err error)
	ObserveOperation(op string, d time.Duration)
}
