package commands

import (
	"time"

	"fittingroom/internal/domain/lease"
	"fittingroom/internal/domain/queue"

	"github.com/google/uuid"
)

type LeaseView struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"room_id"`
	HolderUserID  *uuid.UUID `json:"holder_user_id,omitempty"`
	HolderContact *string    `json:"holder_contact,omitempty"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
}

type QueueEntryView struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"room_id"`
	HolderUserID  *uuid.UUID `json:"holder_user_id,omitempty"`
	HolderContact string     `json:"holder_contact"`
	Position      int        `json:"position"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	NotifiedAt    *time.Time `json:"notified_at,omitempty"`
}

type JoinQueueResult struct {
	Entry      QueueEntryView
	Position   int
	EtaMinutes int
}

func newLeaseView(l *lease.Lease) LeaseView {
	h := l.Holder()
	return LeaseView{
		ID:            l.ID(),
		RoomID:        l.RoomID(),
		HolderUserID:  h.UserID(),
		HolderContact: h.ContactPtr(),
		Status:        l.Status().String(),
		StartedAt:     l.StartedAt(),
		ExpiresAt:     l.ExpiresAt(),
	}
}

func newQueueEntryView(e *queue.Entry) QueueEntryView {
	h := e.Holder()
	return QueueEntryView{
		ID:            e.ID(),
		RoomID:        e.RoomID(),
		HolderUserID:  h.UserID(),
		HolderContact: h.Contact().String(),
		Position:      e.Position(),
		Status:        e.Status().String(),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
		NotifiedAt:    e.NotifiedAt(),
	}
}
