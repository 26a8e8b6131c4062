//go:build unit || e2e

package builder

import (
	"time"

	"fittingroom/internal/domain/room"
	"fittingroom/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID        uuid.UUID
	Number    string
	BrandID   uuid.UUID
	IsActive  bool
	CreatedAt time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        uuid.New(),
		Number:    "1",
		BrandID:   uuid.New(),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(b.ID, b.Number, b.BrandID, b.IsActive, b.CreatedAt)
}

func (b *RoomBuilder) BuildReadModel() readmodel.RoomRM {
	return readmodel.RoomRM{
		ID:       b.ID,
		Number:   b.Number,
		BrandID:  b.BrandID,
		IsActive: b.IsActive,
	}
}
