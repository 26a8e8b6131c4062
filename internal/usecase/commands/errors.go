package commands

import (
	"fmt"
	"time"

	"fittingroom/internal/pkg/errs"
)

// Classify usecase errors with errs.Is; DB failures are marked, not replaced.
var (
	ErrRoomOccupied     = errs.New("room is occupied")
	ErrInvalidRoom      = errs.New("room not found or inactive")
	ErrEntryNotFound    = errs.New("queue entry not found")
	ErrNotEntryHolder   = errs.New("queue entry belongs to another holder")
	ErrLeaseNotFound    = errs.New("lease not found")
	ErrLeaseNotActive   = errs.New("lease is not active")
	ErrInvalidInput     = errs.New("invalid input")
	ErrStoreUnavailable = errs.New("store unavailable")
)

// ConflictError is returned when another holder owns the room right now.
type ConflictError struct {
	Current LeaseView
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room is occupied until %s", e.Current.ExpiresAt.Format(time.RFC3339))
}

func (e *ConflictError) Unwrap() error {
	return ErrRoomOccupied
}

func (e *ConflictError) OccupiedUntil() time.Time {
	return e.Current.ExpiresAt
}
