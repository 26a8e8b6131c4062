package repository

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/queue"
	"fittingroom/internal/infra"
	"fittingroom/internal/infra/db"
	"fittingroom/internal/pkg/pgconv"
	"fittingroom/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const queueEntryColumns = `id, seq, room_id, holder_user_id, holder_contact, position, status, created_at, updated_at, notified_at`

const (
	lockRoomLineSQL = `SELECT pg_advisory_xact_lock(hashtext($1::text))`

	waitingStatsSQL = `
SELECT count(*) FILTER (WHERE status = 'waiting'), COALESCE(max(position), 0)
FROM queue_entries
WHERE room_id = $1`

	insertQueueEntrySQL = `
INSERT INTO queue_entries (id, room_id, holder_user_id, holder_contact, position, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING seq, created_at`

	findQueueEntryForUpdateSQL = `
SELECT ` + queueEntryColumns + `
FROM queue_entries
WHERE id = $1
FOR UPDATE`

	updateQueueEntryStatusSQL = `
UPDATE queue_entries
SET status = $2, updated_at = $3, notified_at = $4
WHERE id = $1`

	nextWaitingForUpdateSQL = `
SELECT ` + queueEntryColumns + `
FROM queue_entries
WHERE room_id = $1 AND status = 'waiting'
ORDER BY created_at, seq
LIMIT 1
FOR UPDATE SKIP LOCKED`

	// a notice is answered once a lease for the room starts after it went out
	outstandingNoticeSQL = `
SELECT EXISTS (
    SELECT 1
    FROM queue_entries q
    WHERE q.room_id = $1
      AND q.status = 'notified'
      AND q.notified_at > COALESCE(
          (SELECT max(l.started_at) FROM leases l WHERE l.room_id = $1),
          '-infinity'::timestamptz)
)`

	expireNotifiedBeforeSQL = `
UPDATE queue_entries
SET status = 'expired', updated_at = $2
WHERE status = 'notified' AND notified_at <= $1
RETURNING ` + queueEntryColumns
)

type QueueRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewQueueRepository(dbtx db.DBTX, logger *slog.Logger) *QueueRepository {
	return &QueueRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *QueueRepository) LockRoomLine(ctx context.Context, roomID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, lockRoomLineSQL, roomID.String()); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to lock room line", err)
	}
	return nil
}

func (r *QueueRepository) WaitingStats(ctx context.Context, roomID uuid.UUID) (shared.WaitingStats, error) {
	var count, last int
	if err := r.db.QueryRow(ctx, waitingStatsSQL, roomID).Scan(&count, &last); err != nil {
		return shared.WaitingStats{}, infra.ClassifyPgErr(r.logger, "failed to count waiting entries", err)
	}
	return shared.WaitingStats{Count: count, LastPosition: last}, nil
}

func (r *QueueRepository) Insert(ctx context.Context, e *queue.Entry) error {
	h := e.Holder()

	var (
		seq       int64
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, insertQueueEntrySQL,
		e.ID(),
		e.RoomID(),
		pgconv.UUIDPtrToPgtype(h.UserID()),
		h.Contact().String(),
		e.Position(),
		e.Status().String(),
	).Scan(&seq, &createdAt)
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to insert queue entry", err)
	}

	e.Stamp(seq, createdAt)
	return nil
}

func (r *QueueRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*queue.Entry, error) {
	e, err := scanQueueEntry(r.db.QueryRow(ctx, findQueueEntryForUpdateSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find queue entry", err)
	}
	return e, nil
}

func (r *QueueRepository) UpdateStatus(ctx context.Context, e *queue.Entry) error {
	tag, err := r.db.Exec(ctx, updateQueueEntryStatusSQL,
		e.ID(),
		e.Status().String(),
		e.UpdatedAt(),
		pgconv.TimePtrToPgtype(e.NotifiedAt()),
	)
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update queue entry status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "queue entry vanished during update", nil)
	}
	return nil
}

func (r *QueueRepository) HasOutstandingNotice(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var pending bool
	if err := r.db.QueryRow(ctx, outstandingNoticeSQL, roomID).Scan(&pending); err != nil {
		return false, infra.ClassifyPgErr(r.logger, "failed to check outstanding notice", err)
	}
	return pending, nil
}

func (r *QueueRepository) NextWaitingForUpdate(ctx context.Context, roomID uuid.UUID) (*queue.Entry, error) {
	e, err := scanQueueEntry(r.db.QueryRow(ctx, nextWaitingForUpdateSQL, roomID))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find next waiting entry", err)
	}
	return e, nil
}

func (r *QueueRepository) ExpireNotifiedBefore(ctx context.Context, cutoff, now time.Time) ([]*queue.Entry, error) {
	rows, err := r.db.Query(ctx, expireNotifiedBeforeSQL, cutoff, now)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to expire notified entries", err)
	}
	defer rows.Close()

	var out []*queue.Entry
	for rows.Next() {
		e, err := scanQueueEntry(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr(r.logger, "failed to scan expired entry", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to iterate expired entries", err)
	}
	return out, nil
}

func scanQueueEntry(row pgx.Row) (*queue.Entry, error) {
	var (
		id, roomID           uuid.UUID
		seq                  int64
		userID               pgtype.UUID
		contact              string
		position             int
		status               string
		createdAt, updatedAt time.Time
		notifiedAt           pgtype.Timestamptz
	)
	err := row.Scan(&id, &seq, &roomID, &userID, &contact, &position, &status, &createdAt, &updatedAt, &notifiedAt)
	if err != nil {
		return nil, err
	}

	h := holder.Reconstruct(pgconv.UUIDPtrFromPgtype(userID), contact)
	return queue.ReconstructEntry(id, seq, roomID, h, position, queue.Status(status),
		createdAt, updatedAt, pgconv.TimePtrFromPgtype(notifiedAt)), nil
}
