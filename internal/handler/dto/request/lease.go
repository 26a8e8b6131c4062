package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateLeaseRequest struct {
	RoomID        uuid.UUID  `json:"roomId" binding:"required"`
	HolderContact *string    `json:"holderContact,omitempty"`
	HolderUserID  *uuid.UUID `json:"holderUserId,omitempty"`
}

func (r CreateLeaseRequest) GetHolderContact() string {
	if r.HolderContact == nil {
		return ""
	}
	return strings.TrimSpace(*r.HolderContact)
}
