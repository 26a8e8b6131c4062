package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 16 characters)")
	ErrMissingBrand      = errors.New("room must belong to a brand")
)

const (
	MaxRoomNumberLength = 16
)

// Room is a physical fitting room. Only the active flag changes after creation.
type Room struct {
	id        uuid.UUID
	number    string
	brandID   uuid.UUID
	isActive  bool
	createdAt time.Time
}

func NewRoom(id uuid.UUID, number string, brandID uuid.UUID, isActive bool) (*Room, error) {
	if err := validateRoomNumber(number); err != nil {
		return nil, err
	}
	if brandID == uuid.Nil {
		return nil, ErrMissingBrand
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Room{
		id:       id,
		number:   strings.TrimSpace(number),
		brandID:  brandID,
		isActive: isActive,
	}, nil
}

func ReconstructRoom(id uuid.UUID, number string, brandID uuid.UUID, isActive bool, createdAt time.Time) *Room {
	return &Room{
		id:        id,
		number:    number,
		brandID:   brandID,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

func validateRoomNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return ErrRoomNumberTooLong
	}
	return nil
}

// IsBookable reports whether new leases or queue entries may target the room.
func (r *Room) IsBookable() bool {
	return r.isActive
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) BrandID() uuid.UUID   { return r.brandID }
func (r *Room) IsActive() bool       { return r.isActive }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
