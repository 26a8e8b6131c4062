package response

import (
	"time"

	"fittingroom/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LeaseResponse struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"roomId"`
	HolderUserID  *uuid.UUID `json:"holderUserId,omitempty"`
	HolderContact *string    `json:"holderContact,omitempty"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"startedAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
}

type LeaseEnvelope struct {
	Lease *LeaseResponse `json:"lease"`
}

type ConflictResponse struct {
	Error         string    `json:"error"`
	OccupiedUntil time.Time `json:"occupiedUntil"`
}

func FromLeaseView(v *commands.LeaseView) (*LeaseEnvelope, error) {
	var out LeaseResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &LeaseEnvelope{Lease: &out}, nil
}
