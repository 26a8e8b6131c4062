package commands

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/queue"
	"fittingroom/internal/infra"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/usecase/shared"

	"github.com/google/uuid"
)

type SweepResult struct {
	ExpiredLeases   int
	ExpiredNotified int
	Promoted        int
}

type ExpiryCommands interface {
	// Sweep expires overdue leases and unanswered notifications, then hands
	// every freed room to the next holder in line.
	Sweep(ctx context.Context) (SweepResult, error)
}

type expiryCommandsImpl struct {
	uow     shared.UnitOfWork
	effects sideEffects
	clock   clock.Clock
	grace   time.Duration
	logger  *slog.Logger
}

func NewExpiryCommands(
	uow shared.UnitOfWork,
	publisher changefeed.Publisher,
	notifier ContactNotifier,
	metrics Metrics,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ExpiryCommands {
	return &expiryCommandsImpl{
		uow: uow,
		effects: sideEffects{
			publisher:   publisher,
			notifier:    notifier,
			metrics:     metrics,
			logger:      logger,
			notifyGrace: cfg.Engine.NotifyGrace,
		},
		clock:  clk,
		grace:  cfg.Engine.NotifyGrace,
		logger: logger,
	}
}

func (c *expiryCommandsImpl) Sweep(ctx context.Context) (result SweepResult, err error) {
	ctx, span := tracer.Start(ctx, "ExpiryCommands.Sweep")
	start := time.Now()
	defer func() {
		c.effects.metrics.ObserveOperation("sweep", time.Since(start))
		endSpan(span, err)
	}()

	var (
		now           time.Time
		leaseRooms    []uuid.UUID
		notifiedRooms []uuid.UUID
		promoted      []*queue.Entry
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		leaseRooms, notifiedRooms, promoted = nil, nil, nil
		now = c.clock.Now()

		stale, err := tx.Queue().ExpireNotifiedBefore(ctx, now.Add(-c.grace), now)
		if err != nil {
			return err
		}
		for _, e := range stale {
			notifiedRooms = appendRoom(notifiedRooms, e.RoomID())
		}

		expired, err := tx.Leases().ExpireAllOverdue(ctx, now)
		if err != nil {
			return err
		}
		for _, l := range expired {
			leaseRooms = appendRoom(leaseRooms, l.RoomID())
		}

		result = SweepResult{ExpiredLeases: len(expired), ExpiredNotified: len(stale)}

		freed := leaseRooms
		for _, id := range notifiedRooms {
			freed = appendRoom(freed, id)
		}
		for _, roomID := range freed {
			// the room may have been taken again since the notice went out
			if _, err := tx.Leases().FindActiveByRoom(ctx, roomID); err == nil {
				continue
			} else if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}

			next, err := promoteNext(ctx, tx, roomID, now)
			if err != nil {
				return err
			}
			if next != nil {
				promoted = append(promoted, next)
			}
		}
		result.Promoted = len(promoted)
		return nil
	})
	if err != nil {
		return SweepResult{}, storeErr(err)
	}

	if result.ExpiredLeases > 0 {
		c.effects.metrics.LeasesExpired(result.ExpiredLeases)
	}
	if result.ExpiredNotified > 0 {
		c.effects.metrics.NotifiedExpired(result.ExpiredNotified)
	}

	for _, roomID := range leaseRooms {
		c.effects.publish(ctx, changefeed.TableLeases, roomID, nil, now)
	}
	queueRooms := notifiedRooms
	for _, e := range promoted {
		queueRooms = appendRoom(queueRooms, e.RoomID())
	}
	for _, roomID := range queueRooms {
		c.effects.publish(ctx, changefeed.TableQueueEntries, roomID, nil, now)
	}
	c.effects.notifyPromoted(ctx, promoted)

	if result != (SweepResult{}) {
		c.logger.Info("sweep finished",
			"expired_leases", result.ExpiredLeases,
			"expired_notified", result.ExpiredNotified,
			"promoted", result.Promoted,
		)
	}
	return result, nil
}

func appendRoom(rooms []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, r := range rooms {
		if r == id {
			return rooms
		}
	}
	return append(rooms, id)
}
