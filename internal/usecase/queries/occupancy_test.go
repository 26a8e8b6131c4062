//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fittingroom/internal/domain/occupancy"
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/queries"
	"fittingroom/internal/usecase/readmodel"
	"fittingroom/tests/common/builder"
	queriesmock "fittingroom/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type occupancyFixture struct {
	store   *queriesmock.MockOccupancyReadStore
	gauges  *queriesmock.MockOccupancyGauges
	clock   *clock.MockClock
	queries queries.OccupancyQueries
}

func newOccupancyFixture(t *testing.T) *occupancyFixture {
	ctrl := gomock.NewController(t)
	f := &occupancyFixture{
		store:  queriesmock.NewMockOccupancyReadStore(ctrl),
		gauges: queriesmock.NewMockOccupancyGauges(ctrl),
		clock:  clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.queries = queries.NewOccupancyQueries(f.store, f.gauges, f.clock, config.NewTestConfig(), logger)
	return f
}

func (f *occupancyFixture) expectSnapshot(rooms []readmodel.RoomRM, leases []readmodel.ActiveLeaseRM, waiting []readmodel.WaitingEntryRM) {
	f.store.EXPECT().ListRooms(gomock.Any()).Return(rooms, nil)
	f.store.EXPECT().ListActiveLeases(gomock.Any(), f.clock.Now()).Return(leases, nil)
	f.store.EXPECT().ListWaitingEntries(gomock.Any()).Return(waiting, nil)
}

func leaseIn(roomID uuid.UUID, startedAt time.Time) readmodel.ActiveLeaseRM {
	return builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.RoomID = roomID
		b.StartedAt = startedAt
	}).BuildReadModel()
}

func waitingIn(roomID uuid.UUID, contact string, position int, createdAt time.Time) readmodel.WaitingEntryRM {
	return builder.NewQueueEntryBuilder().With(func(b *builder.QueueEntryBuilder) {
		b.RoomID = roomID
		b.Contact = contact
		b.Position = position
		b.CreatedAt = createdAt
	}).BuildReadModel()
}

// =============================================================================
// RoomOccupancy Tests
// =============================================================================

func TestOccupancyQueries_RoomOccupancy(t *testing.T) {
	f := newOccupancyFixture(t)
	now := f.clock.Now()

	busy := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = "1" }).BuildReadModel()
	free := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = "2" }).BuildReadModel()
	active := leaseIn(busy.ID, now.Add(-2*time.Minute-30*time.Second))

	f.expectSnapshot(
		[]readmodel.RoomRM{busy, free},
		[]readmodel.ActiveLeaseRM{active},
		[]readmodel.WaitingEntryRM{
			waitingIn(busy.ID, "5550000001", 1, now.Add(-time.Minute)),
			waitingIn(busy.ID, "5550000002", 2, now),
		},
	)

	got, err := f.queries.RoomOccupancy(context.Background())
	require.NoError(t, err)

	until := active.ExpiresAt
	want := []queries.RoomOccupancyView{
		{
			RoomID:               busy.ID,
			Number:               "1",
			Occupied:             true,
			OccupiedUntil:        &until,
			RemainingSeconds:     150,
			QueueLength:          2,
			EstimatedWaitMinutes: 3 + 2*5,
		},
		{RoomID: free.ID, Number: "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RoomOccupancy mismatch (-want +got):\n%s", diff)
	}
}

func TestOccupancyQueries_StoreFailure(t *testing.T) {
	f := newOccupancyFixture(t)
	f.store.EXPECT().ListRooms(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := f.queries.RoomOccupancy(context.Background())

	assert.True(t, errs.Is(err, queries.ErrStoreUnavailable))
}

// =============================================================================
// Summary Tests
// =============================================================================

func TestOccupancyQueries_Summary(t *testing.T) {
	testCases := []struct {
		name        string
		rooms       int
		leases      int
		queued      int
		wantStatus  occupancy.Level
		wantAverage int
	}{
		{
			name:        "success: quiet store",
			rooms:       5,
			leases:      1,
			wantStatus:  occupancy.LevelLow,
			wantAverage: 5,
		},
		{
			name:        "success: five users and three waiting is busy",
			rooms:       5,
			leases:      5,
			queued:      3,
			wantStatus:  occupancy.LevelHigh,
			wantAverage: 5 + 1*5,
		},
		{
			name:        "success: short line on few rooms",
			rooms:       2,
			leases:      2,
			queued:      3,
			wantStatus:  occupancy.LevelModerate,
			wantAverage: 5 + 2*5,
		},
		{
			name:        "success: empty store",
			wantStatus:  occupancy.LevelLow,
			wantAverage: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOccupancyFixture(t)
			now := f.clock.Now()

			var (
				rooms   []readmodel.RoomRM
				leases  []readmodel.ActiveLeaseRM
				waiting []readmodel.WaitingEntryRM
			)
			for i := 0; i < tc.rooms; i++ {
				rooms = append(rooms, builder.NewRoomBuilder().BuildReadModel())
			}
			for i := 0; i < tc.leases; i++ {
				leases = append(leases, leaseIn(rooms[i].ID, now))
			}
			for i := 0; i < tc.queued; i++ {
				waiting = append(waiting, waitingIn(rooms[0].ID, "5550000009", i+1, now))
			}
			f.expectSnapshot(rooms, leases, waiting)
			f.gauges.EXPECT().SetOccupancy(tc.leases, tc.queued)

			got, err := f.queries.Summary(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tc.leases, got.CurrentUsers)
			assert.Equal(t, tc.queued, got.QueueLength)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantAverage, got.AverageWaitMinutes)
		})
	}
}

// =============================================================================
// HolderPositions Tests
// =============================================================================

func TestOccupancyQueries_HolderPositions(t *testing.T) {
	f := newOccupancyFixture(t)
	now := f.clock.Now()

	roomA := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = "A" }).BuildReadModel()
	roomB := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = "B" }).BuildReadModel()
	mine := "5550001234"

	first := waitingIn(roomB.ID, mine, 4, now.Add(-3*time.Minute))
	second := waitingIn(roomA.ID, mine, 2, now.Add(-time.Minute))

	f.expectSnapshot(
		[]readmodel.RoomRM{roomA, roomB},
		[]readmodel.ActiveLeaseRM{leaseIn(roomA.ID, now.Add(-time.Minute))},
		[]readmodel.WaitingEntryRM{
			waitingIn(roomA.ID, "5550009999", 1, now.Add(-2*time.Minute)),
			second,
			first,
		},
	)

	got, err := f.queries.HolderPositions(context.Background(), queries.HolderLookup{Phone: "555-000-1234"})
	require.NoError(t, err)

	want := []queries.HolderPositionView{
		{EntryID: first.ID, RoomID: roomB.ID, RoomNumber: "B", Position: 4, PlaceInLine: 1, EstimatedWaitMinutes: 0, CreatedAt: first.CreatedAt},
		{EntryID: second.ID, RoomID: roomA.ID, RoomNumber: "A", Position: 2, PlaceInLine: 2, EstimatedWaitMinutes: 4 + 5, CreatedAt: second.CreatedAt},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HolderPositions mismatch (-want +got):\n%s", diff)
	}
}

func TestOccupancyQueries_HolderPositionsRequiresIdentity(t *testing.T) {
	f := newOccupancyFixture(t)

	_, err := f.queries.HolderPositions(context.Background(), queries.HolderLookup{})
	assert.True(t, errs.Is(err, queries.ErrHolderRequired))

	_, err = f.queries.HolderPositions(context.Background(), queries.HolderLookup{Phone: "not-a-phone"})
	assert.True(t, errs.Is(err, queries.ErrInvalidContact))
}
