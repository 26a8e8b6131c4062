package response

import (
	"time"

	"fittingroom/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QueueEntryResponse struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"roomId"`
	HolderUserID  *uuid.UUID `json:"holderUserId,omitempty"`
	HolderContact string     `json:"holderContact"`
	Position      int        `json:"position"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	NotifiedAt    *time.Time `json:"notifiedAt,omitempty"`
}

type JoinQueueResponse struct {
	QueueEntry           *QueueEntryResponse `json:"queueEntry"`
	Position             int                 `json:"position"`
	EstimatedWaitMinutes int                 `json:"estimatedWaitMinutes"`
}

type QueueEntryEnvelope struct {
	QueueEntry *QueueEntryResponse `json:"queueEntry"`
}

func FromQueueEntryView(v *commands.QueueEntryView) (*QueueEntryResponse, error) {
	var out QueueEntryResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromJoinQueueResult(r *commands.JoinQueueResult) (*JoinQueueResponse, error) {
	entry, err := FromQueueEntryView(&r.Entry)
	if err != nil {
		return nil, err
	}
	return &JoinQueueResponse{
		QueueEntry:           entry,
		Position:             r.Position,
		EstimatedWaitMinutes: r.EtaMinutes,
	}, nil
}
