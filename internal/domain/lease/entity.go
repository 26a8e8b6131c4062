package lease

import (
	"errors"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/waittime"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("lease duration must be positive")
	ErrMissingRoom     = errors.New("lease must reference a room")
	ErrNotActive       = errors.New("lease is not active")
)

// DefaultDuration is the fixed hold time of a fitting room.
const DefaultDuration = 5 * time.Minute

type Lease struct {
	id        uuid.UUID
	roomID    uuid.UUID
	holder    holder.Holder
	status    Status
	startedAt time.Time
	expiresAt time.Time
}

func NewLease(roomID uuid.UUID, h holder.Holder, now time.Time, duration time.Duration) (*Lease, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Lease{
		id:        uuid.New(),
		roomID:    roomID,
		holder:    h,
		status:    StatusActive,
		startedAt: now,
		expiresAt: now.Add(duration),
	}, nil
}

func ReconstructLease(
	id, roomID uuid.UUID,
	h holder.Holder,
	status Status,
	startedAt, expiresAt time.Time,
) *Lease {
	return &Lease{
		id:        id,
		roomID:    roomID,
		holder:    h,
		status:    status,
		startedAt: startedAt,
		expiresAt: expiresAt,
	}
}

// IsActiveAt is false once the expiry instant is reached, even before the row is flipped.
func (l *Lease) IsActiveAt(now time.Time) bool {
	return l.status == StatusActive && now.Before(l.expiresAt)
}

func (l *Lease) RemainingAt(now time.Time) time.Duration {
	if !l.IsActiveAt(now) {
		return 0
	}
	return l.expiresAt.Sub(now)
}

func (l *Lease) Complete() error {
	if l.status != StatusActive {
		return ErrNotActive
	}
	l.status = StatusCompleted
	return nil
}

func (l *Lease) Expire() error {
	if l.status != StatusActive {
		return ErrNotActive
	}
	l.status = StatusExpired
	return nil
}

// Window feeds the wait-time estimator.
func (l *Lease) Window() *waittime.Window {
	return &waittime.Window{StartedAt: l.startedAt, ExpiresAt: l.expiresAt}
}

func (l *Lease) ID() uuid.UUID         { return l.id }
func (l *Lease) RoomID() uuid.UUID     { return l.roomID }
func (l *Lease) Holder() holder.Holder { return l.holder }
func (l *Lease) Status() Status        { return l.status }
func (l *Lease) StartedAt() time.Time  { return l.startedAt }
func (l *Lease) ExpiresAt() time.Time  { return l.expiresAt }
