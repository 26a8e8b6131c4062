package queries

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/occupancy"
	"fittingroom/internal/domain/waittime"
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrHolderRequired   = errs.New("phone or userId is required")
	ErrInvalidContact   = errs.New("invalid phone number")
	ErrStoreUnavailable = errs.New("read store unavailable")
)

type RoomOccupancyView struct {
	RoomID           uuid.UUID  `json:"roomId"`
	Number           string     `json:"number"`
	Occupied         bool       `json:"occupied"`
	OccupiedUntil    *time.Time `json:"occupiedUntil,omitempty"`
	RemainingSeconds int        `json:"remainingSeconds"`
	QueueLength      int        `json:"queueLength"`
	// EstimatedWaitMinutes is what a holder joining the line now would be quoted.
	EstimatedWaitMinutes int `json:"estimatedWaitMinutes"`
}

type SummaryView struct {
	CurrentUsers       int             `json:"currentUsers"`
	QueueLength        int             `json:"queueLength"`
	AverageWaitMinutes int             `json:"averageWaitMinutes"`
	Status             occupancy.Level `json:"status"`
}

type HolderPositionView struct {
	EntryID              uuid.UUID `json:"entryId"`
	RoomID               uuid.UUID `json:"roomId"`
	RoomNumber           string    `json:"roomNumber"`
	Position             int       `json:"position"`
	PlaceInLine          int       `json:"placeInLine"`
	EstimatedWaitMinutes int       `json:"estimatedWaitMinutes"`
	CreatedAt            time.Time `json:"createdAt"`
}

// HolderLookup names a party by phone, by user id, or both.
type HolderLookup struct {
	UserID *uuid.UUID
	Phone  string
}

type OccupancyReadStore interface {
	ListRooms(ctx context.Context) ([]readmodel.RoomRM, error)
	ListActiveLeases(ctx context.Context, now time.Time) ([]readmodel.ActiveLeaseRM, error)
	ListWaitingEntries(ctx context.Context) ([]readmodel.WaitingEntryRM, error)
}

type OccupancyGauges interface {
	SetOccupancy(currentUsers, queueLength int)
}

type OccupancyQueries interface {
	RoomOccupancy(ctx context.Context) ([]RoomOccupancyView, error)
	Summary(ctx context.Context) (*SummaryView, error)
	HolderPositions(ctx context.Context, lookup HolderLookup) ([]HolderPositionView, error)
}

type occupancyQueriesImpl struct {
	store     OccupancyReadStore
	gauges    OccupancyGauges
	estimator waittime.Estimator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewOccupancyQueries(store OccupancyReadStore, gauges OccupancyGauges, clk clock.Clock, cfg config.Config, logger *slog.Logger) OccupancyQueries {
	return &occupancyQueriesImpl{
		store:     store,
		gauges:    gauges,
		estimator: waittime.NewEstimator(cfg.Engine.PerTurn),
		clock:     clk,
		logger:    logger,
	}
}

// snapshot is one consistent-enough read of the three tables, keyed by room.
type snapshot struct {
	now     time.Time
	rooms   []readmodel.RoomRM
	leases  map[uuid.UUID]readmodel.ActiveLeaseRM
	waiting map[uuid.UUID][]readmodel.WaitingEntryRM
}

func (q *occupancyQueriesImpl) load(ctx context.Context) (*snapshot, error) {
	now := q.clock.Now()

	rooms, err := q.store.ListRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	leases, err := q.store.ListActiveLeases(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	entries, err := q.store.ListWaitingEntries(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	snap := &snapshot{
		now:     now,
		rooms:   rooms,
		leases:  make(map[uuid.UUID]readmodel.ActiveLeaseRM, len(leases)),
		waiting: make(map[uuid.UUID][]readmodel.WaitingEntryRM),
	}
	for _, l := range leases {
		snap.leases[l.RoomID] = l
	}
	for _, e := range entries {
		snap.waiting[e.RoomID] = append(snap.waiting[e.RoomID], e)
	}
	return snap, nil
}

func (s *snapshot) window(roomID uuid.UUID) *waittime.Window {
	l, ok := s.leases[roomID]
	if !ok {
		return nil
	}
	return &waittime.Window{StartedAt: l.StartedAt, ExpiresAt: l.ExpiresAt}
}

func (q *occupancyQueriesImpl) RoomOccupancy(ctx context.Context) ([]RoomOccupancyView, error) {
	snap, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RoomOccupancyView, 0, len(snap.rooms))
	for _, rm := range snap.rooms {
		queueLength := len(snap.waiting[rm.ID])
		v := RoomOccupancyView{
			RoomID:               rm.ID,
			Number:               rm.Number,
			QueueLength:          queueLength,
			EstimatedWaitMinutes: q.estimator.Minutes(snap.window(rm.ID), queueLength, snap.now),
		}
		if l, ok := snap.leases[rm.ID]; ok {
			until := l.ExpiresAt
			v.Occupied = true
			v.OccupiedUntil = &until
			v.RemainingSeconds = remainingSeconds(until, snap.now)
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *occupancyQueriesImpl) Summary(ctx context.Context) (*SummaryView, error) {
	snap, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]int, 0, len(snap.leases))
	for roomID := range snap.leases {
		remaining = append(remaining, q.estimator.Minutes(snap.window(roomID), 0, snap.now))
	}
	queueLength := 0
	for _, entries := range snap.waiting {
		queueLength += len(entries)
	}

	currentUsers := len(snap.leases)
	q.gauges.SetOccupancy(currentUsers, queueLength)

	return &SummaryView{
		CurrentUsers:       currentUsers,
		QueueLength:        queueLength,
		AverageWaitMinutes: occupancy.AverageWaitMinutes(remaining, queueLength, len(snap.rooms), int(q.estimator.PerTurn/time.Minute)),
		Status:             occupancy.Classify(currentUsers, queueLength),
	}, nil
}

// HolderPositions lists the holder's waiting entries, oldest first. Position is
// the label handed out on join; PlaceInLine is where the entry stands now.
func (q *occupancyQueriesImpl) HolderPositions(ctx context.Context, lookup HolderLookup) ([]HolderPositionView, error) {
	target, err := lookup.holder()
	if err != nil {
		return nil, err
	}

	snap, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	numbers := make(map[uuid.UUID]string, len(snap.rooms))
	for _, rm := range snap.rooms {
		numbers[rm.ID] = rm.Number
	}

	var views []HolderPositionView
	for roomID, entries := range snap.waiting {
		for ahead, e := range entries {
			if !target.Matches(holder.Reconstruct(e.HolderUserID, e.HolderContact)) {
				continue
			}
			views = append(views, HolderPositionView{
				EntryID:              e.ID,
				RoomID:               roomID,
				RoomNumber:           numbers[roomID],
				Position:             e.Position,
				PlaceInLine:          ahead + 1,
				EstimatedWaitMinutes: q.estimator.Minutes(snap.window(roomID), ahead, snap.now),
				CreatedAt:            e.CreatedAt,
			})
		}
	}

	slices.SortStableFunc(views, func(a, b HolderPositionView) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return views, nil
}

func (l HolderLookup) holder() (holder.Holder, error) {
	c, err := holder.NewContact(l.Phone)
	if err != nil {
		return holder.Holder{}, errs.Mark(err, ErrInvalidContact)
	}
	h, err := holder.NewHolder(l.UserID, c)
	if err != nil {
		return holder.Holder{}, errs.Mark(err, ErrHolderRequired)
	}
	return h, nil
}

func remainingSeconds(until, now time.Time) int {
	left := until.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
