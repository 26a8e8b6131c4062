package queue

import (
	"errors"
	"time"

	"fittingroom/internal/domain/holder"

	"github.com/google/uuid"
)

var (
	ErrContactRequired   = errors.New("queue entry needs a contact")
	ErrInvalidPosition   = errors.New("queue position must be at least 1")
	ErrMissingRoom       = errors.New("queue entry must reference a room")
	ErrInvalidTransition = errors.New("invalid queue entry status transition")
)

type Entry struct {
	id         uuid.UUID
	seq        int64
	roomID     uuid.UUID
	holder     holder.Holder
	position   int
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	notifiedAt *time.Time
}

// NewEntry builds a waiting entry. seq and createdAt are assigned by the store.
func NewEntry(roomID uuid.UUID, h holder.Holder, position int) (*Entry, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if h.Contact().IsEmpty() {
		return nil, ErrContactRequired
	}
	if position < 1 {
		return nil, ErrInvalidPosition
	}

	return &Entry{
		id:       uuid.New(),
		roomID:   roomID,
		holder:   h,
		position: position,
		status:   StatusWaiting,
	}, nil
}

func ReconstructEntry(
	id uuid.UUID,
	seq int64,
	roomID uuid.UUID,
	h holder.Holder,
	position int,
	status Status,
	createdAt, updatedAt time.Time,
	notifiedAt *time.Time,
) *Entry {
	return &Entry{
		id:         id,
		seq:        seq,
		roomID:     roomID,
		holder:     h,
		position:   position,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		notifiedAt: notifiedAt,
	}
}

// Stamp records the store-assigned ordering columns after insert.
func (e *Entry) Stamp(seq int64, createdAt time.Time) {
	e.seq = seq
	e.createdAt = createdAt
	e.updatedAt = createdAt
}

// Cancel is idempotent: only a waiting entry changes, any other state is left alone.
func (e *Entry) Cancel(now time.Time) bool {
	if e.status != StatusWaiting {
		return false
	}
	e.status = StatusCancelled
	e.updatedAt = now
	return true
}

func (e *Entry) Notify(now time.Time) error {
	if !e.status.CanTransitionTo(StatusNotified) {
		return ErrInvalidTransition
	}
	e.status = StatusNotified
	e.updatedAt = now
	e.notifiedAt = &now
	return nil
}

func (e *Entry) Expire(now time.Time) error {
	if !e.status.CanTransitionTo(StatusExpired) {
		return ErrInvalidTransition
	}
	e.status = StatusExpired
	e.updatedAt = now
	return nil
}

func (e *Entry) IsWaiting() bool {
	return e.status == StatusWaiting
}

// NextPosition continues from the highest label the room ever handed out, so a
// cancelled or drained tail never gives its number to a new entry.
func NextPosition(lastAssigned int) int {
	return max(lastAssigned, 0) + 1
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) Seq() int64             { return e.seq }
func (e *Entry) RoomID() uuid.UUID      { return e.roomID }
func (e *Entry) Holder() holder.Holder  { return e.holder }
func (e *Entry) Position() int          { return e.position }
func (e *Entry) Status() Status         { return e.status }
func (e *Entry) CreatedAt() time.Time   { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time   { return e.updatedAt }
func (e *Entry) NotifiedAt() *time.Time { return e.notifiedAt }
