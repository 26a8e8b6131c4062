//go:build unit || e2e

package builder

import (
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/queue"
	"fittingroom/internal/usecase/commands"
	"fittingroom/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type QueueEntryBuilder struct {
	ID         uuid.UUID
	Seq        int64
	RoomID     uuid.UUID
	UserID     *uuid.UUID
	Contact    string
	Position   int
	Status     queue.Status
	CreatedAt  time.Time
	NotifiedAt *time.Time
}

func NewQueueEntryBuilder() *QueueEntryBuilder {
	return &QueueEntryBuilder{
		ID:        uuid.New(),
		Seq:       1,
		RoomID:    uuid.New(),
		Contact:   "+15550002222",
		Position:  1,
		Status:    queue.StatusWaiting,
		CreatedAt: time.Now(),
	}
}

func (b *QueueEntryBuilder) With(mutate func(*QueueEntryBuilder)) *QueueEntryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *QueueEntryBuilder) BuildDomain() *queue.Entry {
	return queue.ReconstructEntry(
		b.ID,
		b.Seq,
		b.RoomID,
		holder.Reconstruct(b.UserID, b.Contact),
		b.Position,
		b.Status,
		b.CreatedAt,
		b.CreatedAt,
		b.NotifiedAt,
	)
}

func (b *QueueEntryBuilder) BuildReadModel() readmodel.WaitingEntryRM {
	return readmodel.WaitingEntryRM{
		ID:            b.ID,
		Seq:           b.Seq,
		RoomID:        b.RoomID,
		HolderUserID:  b.UserID,
		HolderContact: b.Contact,
		Position:      b.Position,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *QueueEntryBuilder) BuildView() *commands.QueueEntryView {
	return &commands.QueueEntryView{
		ID:            b.ID,
		RoomID:        b.RoomID,
		HolderUserID:  b.UserID,
		HolderContact: b.Contact,
		Position:      b.Position,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
		NotifiedAt:    b.NotifiedAt,
	}
}
