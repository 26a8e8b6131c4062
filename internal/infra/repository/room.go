package repository

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/room"
	"fittingroom/internal/infra"
	"fittingroom/internal/infra/db"

	"github.com/google/uuid"
)

const lockRoomByIDSQL = `
SELECT id, number, brand_id, is_active, created_at
FROM rooms
WHERE id = $1
FOR SHARE`

type RoomRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRoomRepository(dbtx db.DBTX, logger *slog.Logger) *RoomRepository {
	return &RoomRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *RoomRepository) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var (
		roomID    uuid.UUID
		number    string
		brandID   uuid.UUID
		isActive  bool
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, lockRoomByIDSQL, id).Scan(&roomID, &number, &brandID, &isActive, &createdAt)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to lock room", err)
	}

	return room.ReconstructRoom(roomID, number, brandID, isActive, createdAt), nil
}
