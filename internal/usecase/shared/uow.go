package shared

import (
	"context"
	"time"

	"fittingroom/internal/domain/lease"
	"fittingroom/internal/domain/queue"
	"fittingroom/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Rooms() RoomRepository
	Leases() LeaseRepository
	Queue() QueueRepository
}

type RoomRepository interface {
	// LockByID takes a share lock so the room cannot be deactivated mid-transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type LeaseRepository interface {
	ExpireOverdue(ctx context.Context, roomID uuid.UUID, now time.Time) (int64, error)
	// InsertIfAbsent reports false when the room already holds an active lease.
	InsertIfAbsent(ctx context.Context, l *lease.Lease) (bool, error)
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID) (*lease.Lease, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lease.Lease, error)
	UpdateStatus(ctx context.Context, l *lease.Lease, now time.Time) error
	ExpireAllOverdue(ctx context.Context, now time.Time) ([]*lease.Lease, error)
}

// WaitingStats: Count is the waiting line length, LastPosition the room's
// high-water mark over entries in any status.
type WaitingStats struct {
	Count        int
	LastPosition int
}

type QueueRepository interface {
	// LockRoomLine serializes joins for one room until the transaction ends.
	LockRoomLine(ctx context.Context, roomID uuid.UUID) error
	WaitingStats(ctx context.Context, roomID uuid.UUID) (WaitingStats, error)
	Insert(ctx context.Context, e *queue.Entry) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*queue.Entry, error)
	UpdateStatus(ctx context.Context, e *queue.Entry) error
	// HasOutstandingNotice reports a notified entry that no lease has started after.
	HasOutstandingNotice(ctx context.Context, roomID uuid.UUID) (bool, error)
	// NextWaitingForUpdate skips rows locked by a concurrent promoter.
	NextWaitingForUpdate(ctx context.Context, roomID uuid.UUID) (*queue.Entry, error)
	ExpireNotifiedBefore(ctx context.Context, cutoff, now time.Time) ([]*queue.Entry, error)
}
