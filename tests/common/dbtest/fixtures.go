//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultBrandID owns the seeded rooms.
var DefaultBrandID = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")

func CreateTestRoom(t *testing.T, db DBLike, number string, active bool) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO rooms (id, number, brand_id, is_active) VALUES ($1, $2, $3, $4)
		ON CONFLICT (brand_id, number) DO UPDATE SET is_active = EXCLUDED.is_active
		RETURNING id`,
		roomID, number, DefaultBrandID, active).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

// CreateTestLease inserts an active lease that started at startedAt.
func CreateTestLease(t *testing.T, db DBLike, roomID uuid.UUID, contact string, startedAt time.Time, duration time.Duration) uuid.UUID {
	t.Helper()

	leaseID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO leases (id, room_id, holder_contact, status, started_at, expires_at)
		VALUES ($1, $2, $3, 'active', $4, $5)`,
		leaseID, roomID, contact, startedAt, startedAt.Add(duration))
	require.NoError(t, err)

	return leaseID
}

func CreateTestQueueEntry(t *testing.T, db DBLike, roomID uuid.UUID, contact string, position int) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO queue_entries (id, room_id, holder_contact, position, status)
		VALUES ($1, $2, $3, $4, 'waiting')`,
		entryID, roomID, contact, position)
	require.NoError(t, err)

	return entryID
}

// CreateTestNotifiedEntry inserts an entry whose turn was announced at notifiedAt.
func CreateTestNotifiedEntry(t *testing.T, db DBLike, roomID uuid.UUID, contact string, position int, notifiedAt time.Time) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO queue_entries (id, room_id, holder_contact, position, status, notified_at, updated_at)
		VALUES ($1, $2, $3, $4, 'notified', $5, $5)`,
		entryID, roomID, contact, position, notifiedAt)
	require.NoError(t, err)

	return entryID
}

func QueueEntryStatus(t *testing.T, db DBLike, entryID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM queue_entries WHERE id = $1", entryID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountActiveLeases(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM leases WHERE room_id = $1 AND status = 'active'", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// QueuePositionsByArrival lists the positions of a room's entries in any status,
// ordered by creation time.
func QueuePositionsByArrival(t *testing.T, pool *pgxpool.Pool, roomID uuid.UUID) []int {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		"SELECT position FROM queue_entries WHERE room_id = $1 ORDER BY created_at, seq", roomID)
	require.NoError(t, err)
	positions, err := pgx.CollectRows(rows, pgx.RowTo[int])
	require.NoError(t, err)
	return positions
}

// inserts the rooms every scenario starts from
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (number, brand_id, is_active)
		SELECT n::text, $1, true FROM generate_series(1, 6) AS n
		ON CONFLICT (brand_id, number) DO NOTHING;
	`, DefaultBrandID)
	if err != nil {
		return err
	}

	return nil
}

// RoomIDByNumber resolves a seeded room.
func RoomIDByNumber(t *testing.T, db DBLike, number string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM rooms WHERE brand_id = $1 AND number = $2", DefaultBrandID, number).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
