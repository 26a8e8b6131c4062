package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	BrandID  uuid.UUID `json:"brand_id"`
	IsActive bool      `json:"is_active"`
}

type ActiveLeaseRM struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"room_id"`
	HolderUserID *uuid.UUID `json:"holder_user_id,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
}

type WaitingEntryRM struct {
	ID            uuid.UUID  `json:"id"`
	Seq           int64      `json:"seq"`
	RoomID        uuid.UUID  `json:"room_id"`
	HolderUserID  *uuid.UUID `json:"holder_user_id,omitempty"`
	HolderContact string     `json:"holder_contact"`
	Position      int        `json:"position"`
	CreatedAt     time.Time  `json:"created_at"`
}
