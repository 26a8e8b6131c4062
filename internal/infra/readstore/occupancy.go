package readstore

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/infra"
	"fittingroom/internal/infra/db"
	"fittingroom/internal/pkg/pgconv"
	"fittingroom/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listRoomsSQL = `
SELECT id, number, brand_id, is_active
FROM rooms
WHERE is_active = true
ORDER BY number`

	// expires_at > now hides leases the sweeper has not flipped yet
	listActiveLeasesSQL = `
SELECT l.id, l.room_id, l.holder_user_id, l.started_at, l.expires_at
FROM leases l
JOIN rooms r ON r.id = l.room_id AND r.is_active = true
WHERE l.status = 'active' AND l.expires_at > $1`

	listWaitingEntriesSQL = `
SELECT q.id, q.seq, q.room_id, q.holder_user_id, q.holder_contact, q.position, q.created_at
FROM queue_entries q
JOIN rooms r ON r.id = q.room_id AND r.is_active = true
WHERE q.status = 'waiting'
ORDER BY q.room_id, q.created_at, q.seq`
)

// OccupancyReadStore reads across rooms, leases and queue entries without locking.
type OccupancyReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewOccupancyReadStore(dbtx db.DBTX, logger *slog.Logger) *OccupancyReadStore {
	return &OccupancyReadStore{
		db:     dbtx,
		logger: logger,
	}
}

func (s *OccupancyReadStore) ListRooms(ctx context.Context) ([]readmodel.RoomRM, error) {
	rows, err := s.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.ClassifyPgErr(s.logger, "failed to list rooms", err)
	}
	defer rows.Close()

	var out []readmodel.RoomRM
	for rows.Next() {
		var rm readmodel.RoomRM
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.BrandID, &rm.IsActive); err != nil {
			return nil, infra.ClassifyPgErr(s.logger, "failed to scan room", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(s.logger, "failed to iterate rooms", err)
	}
	return out, nil
}

func (s *OccupancyReadStore) ListActiveLeases(ctx context.Context, now time.Time) ([]readmodel.ActiveLeaseRM, error) {
	rows, err := s.db.Query(ctx, listActiveLeasesSQL, now)
	if err != nil {
		return nil, infra.ClassifyPgErr(s.logger, "failed to list active leases", err)
	}
	defer rows.Close()

	var out []readmodel.ActiveLeaseRM
	for rows.Next() {
		var (
			rm     readmodel.ActiveLeaseRM
			userID pgtype.UUID
		)
		if err := rows.Scan(&rm.ID, &rm.RoomID, &userID, &rm.StartedAt, &rm.ExpiresAt); err != nil {
			return nil, infra.ClassifyPgErr(s.logger, "failed to scan active lease", err)
		}
		rm.HolderUserID = pgconv.UUIDPtrFromPgtype(userID)
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(s.logger, "failed to iterate active leases", err)
	}
	return out, nil
}

// ListWaitingEntries returns every waiting entry, per room in admission order.
func (s *OccupancyReadStore) ListWaitingEntries(ctx context.Context) ([]readmodel.WaitingEntryRM, error) {
	rows, err := s.db.Query(ctx, listWaitingEntriesSQL)
	if err != nil {
		return nil, infra.ClassifyPgErr(s.logger, "failed to list waiting entries", err)
	}
	defer rows.Close()

	var out []readmodel.WaitingEntryRM
	for rows.Next() {
		var (
			rm     readmodel.WaitingEntryRM
			userID pgtype.UUID
		)
		if err := rows.Scan(&rm.ID, &rm.Seq, &rm.RoomID, &userID, &rm.HolderContact, &rm.Position, &rm.CreatedAt); err != nil {
			return nil, infra.ClassifyPgErr(s.logger, "failed to scan waiting entry", err)
		}
		rm.HolderUserID = pgconv.UUIDPtrFromPgtype(userID)
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(s.logger, "failed to iterate waiting entries", err)
	}
	return out, nil
}
