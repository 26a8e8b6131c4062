package request

import (
	"strings"

	"github.com/google/uuid"
)

type JoinQueueRequest struct {
	RoomID        uuid.UUID  `json:"roomId" binding:"required"`
	HolderContact string     `json:"holderContact" binding:"required"`
	HolderUserID  *uuid.UUID `json:"holderUserId,omitempty"`
}

func (r JoinQueueRequest) GetHolderContact() string {
	return strings.TrimSpace(r.HolderContact)
}

// HolderQuery selects a holder's entries; at least one field must be set.
type HolderQuery struct {
	Phone  string `form:"phone"`
	UserID string `form:"userId"`
}

func (q HolderQuery) ParseUserID() (*uuid.UUID, error) {
	if strings.TrimSpace(q.UserID) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(q.UserID))
	if err != nil {
		return nil, err
	}
	return &id, nil
}
