package repository

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/lease"
	"fittingroom/internal/infra"
	"fittingroom/internal/infra/db"
	"fittingroom/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const leaseColumns = `id, room_id, holder_user_id, holder_contact, status, started_at, expires_at`

const (
	expireOverdueLeasesForRoomSQL = `
UPDATE leases
SET status = 'expired', updated_at = $2
WHERE room_id = $1 AND status = 'active' AND expires_at <= $2`

	// The partial unique index leases_one_active_per_room turns check and insert into one step.
	insertLeaseIfAbsentSQL = `
INSERT INTO leases (` + leaseColumns + `, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $6)
ON CONFLICT (room_id) WHERE status = 'active' DO NOTHING
RETURNING id`

	findActiveLeaseByRoomSQL = `
SELECT ` + leaseColumns + `
FROM leases
WHERE room_id = $1 AND status = 'active'`

	findLeaseByIDForUpdateSQL = `
SELECT ` + leaseColumns + `
FROM leases
WHERE id = $1
FOR UPDATE`

	updateLeaseStatusSQL = `
UPDATE leases
SET status = $2, updated_at = $3
WHERE id = $1`

	expireAllOverdueLeasesSQL = `
UPDATE leases
SET status = 'expired', updated_at = $1
WHERE status = 'active' AND expires_at <= $1
RETURNING ` + leaseColumns
)

type LeaseRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewLeaseRepository(dbtx db.DBTX, logger *slog.Logger) *LeaseRepository {
	return &LeaseRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *LeaseRepository) ExpireOverdue(ctx context.Context, roomID uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, expireOverdueLeasesForRoomSQL, roomID, now)
	if err != nil {
		return 0, infra.ClassifyPgErr(r.logger, "failed to expire overdue leases", err)
	}
	return tag.RowsAffected(), nil
}

func (r *LeaseRepository) InsertIfAbsent(ctx context.Context, l *lease.Lease) (bool, error) {
	h := l.Holder()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertLeaseIfAbsentSQL,
		l.ID(),
		l.RoomID(),
		pgconv.UUIDPtrToPgtype(h.UserID()),
		pgconv.StringPtrToPgtype(h.ContactPtr()),
		l.Status().String(),
		l.StartedAt(),
		l.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.ClassifyPgErr(r.logger, "failed to insert lease", err)
	}
	return true, nil
}

func (r *LeaseRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) (*lease.Lease, error) {
	l, err := scanLease(r.db.QueryRow(ctx, findActiveLeaseByRoomSQL, roomID))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find active lease", err)
	}
	return l, nil
}

func (r *LeaseRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lease.Lease, error) {
	l, err := scanLease(r.db.QueryRow(ctx, findLeaseByIDForUpdateSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find lease", err)
	}
	return l, nil
}

func (r *LeaseRepository) UpdateStatus(ctx context.Context, l *lease.Lease, now time.Time) error {
	tag, err := r.db.Exec(ctx, updateLeaseStatusSQL, l.ID(), l.Status().String(), now)
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update lease status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "lease vanished during update", nil)
	}
	return nil
}

func (r *LeaseRepository) ExpireAllOverdue(ctx context.Context, now time.Time) ([]*lease.Lease, error) {
	rows, err := r.db.Query(ctx, expireAllOverdueLeasesSQL, now)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to expire leases", err)
	}
	defer rows.Close()

	var out []*lease.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr(r.logger, "failed to scan expired lease", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to iterate expired leases", err)
	}
	return out, nil
}

func scanLease(row pgx.Row) (*lease.Lease, error) {
	var (
		id, roomID           uuid.UUID
		userID               pgtype.UUID
		contact              pgtype.Text
		status               string
		startedAt, expiresAt time.Time
	)
	if err := row.Scan(&id, &roomID, &userID, &contact, &status, &startedAt, &expiresAt); err != nil {
		return nil, err
	}

	h := holder.Reconstruct(pgconv.UUIDPtrFromPgtype(userID), pgconv.StringFromPgtype(contact))
	return lease.ReconstructLease(id, roomID, h, lease.Status(status), startedAt, expiresAt), nil
}
