//go:build unit || e2e

package builder

import (
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/lease"
	"fittingroom/internal/usecase/commands"
	"fittingroom/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LeaseBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	UserID    *uuid.UUID
	Contact   string
	Status    lease.Status
	StartedAt time.Time
	Duration  time.Duration
}

func NewLeaseBuilder() *LeaseBuilder {
	return &LeaseBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		Contact:   "+15550001111",
		Status:    lease.StatusActive,
		StartedAt: time.Now(),
		Duration:  lease.DefaultDuration,
	}
}

func (b *LeaseBuilder) With(mutate func(*LeaseBuilder)) *LeaseBuilder {
	mutate(b)
	return b
}

func (b *LeaseBuilder) ExpiresAt() time.Time {
	return b.StartedAt.Add(b.Duration)
}

// Build methods
func (b *LeaseBuilder) BuildDomain() *lease.Lease {
	return lease.ReconstructLease(b.ID, b.RoomID, holder.Reconstruct(b.UserID, b.Contact), b.Status, b.StartedAt, b.ExpiresAt())
}

func (b *LeaseBuilder) BuildReadModel() readmodel.ActiveLeaseRM {
	return readmodel.ActiveLeaseRM{
		ID:           b.ID,
		RoomID:       b.RoomID,
		HolderUserID: b.UserID,
		StartedAt:    b.StartedAt,
		ExpiresAt:    b.ExpiresAt(),
	}
}

func (b *LeaseBuilder) BuildView() *commands.LeaseView {
	contact := b.Contact
	return &commands.LeaseView{
		ID:            b.ID,
		RoomID:        b.RoomID,
		HolderUserID:  b.UserID,
		HolderContact: &contact,
		Status:        b.Status.String(),
		StartedAt:     b.StartedAt,
		ExpiresAt:     b.ExpiresAt(),
	}
}
