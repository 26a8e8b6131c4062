package commands

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/lease"
	"fittingroom/internal/domain/queue"
	"fittingroom/internal/domain/waittime"
	"fittingroom/internal/infra"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type JoinQueueParams struct {
	RoomID        uuid.UUID
	HolderContact string
	HolderUserID  *uuid.UUID
}

// CancelEntryParams names the requester, who must be the entry's holder.
type CancelEntryParams struct {
	EntryID       uuid.UUID
	HolderContact string
	HolderUserID  *uuid.UUID
}

type QueueCommands interface {
	JoinQueue(ctx context.Context, params JoinQueueParams) (*JoinQueueResult, error)
	CancelEntry(ctx context.Context, params CancelEntryParams) (*QueueEntryView, error)
}

type queueCommandsImpl struct {
	uow       shared.UnitOfWork
	effects   sideEffects
	estimator waittime.Estimator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewQueueCommands(
	uow shared.UnitOfWork,
	publisher changefeed.Publisher,
	notifier ContactNotifier,
	metrics Metrics,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) QueueCommands {
	return &queueCommandsImpl{
		uow: uow,
		effects: sideEffects{
			publisher:   publisher,
			notifier:    notifier,
			metrics:     metrics,
			logger:      logger,
			notifyGrace: cfg.Engine.NotifyGrace,
		},
		estimator: waittime.NewEstimator(cfg.Engine.PerTurn),
		clock:     clk,
		logger:    logger,
	}
}

func (c *queueCommandsImpl) JoinQueue(ctx context.Context, params JoinQueueParams) (result *JoinQueueResult, err error) {
	ctx, span := tracer.Start(ctx, "QueueCommands.JoinQueue",
		trace.WithAttributes(attribute.String("room.id", params.RoomID.String())))
	start := time.Now()
	defer func() {
		c.effects.metrics.ObserveOperation("join_queue", time.Since(start))
		endSpan(span, err)
	}()

	h, err := buildHolder(params.HolderUserID, params.HolderContact)
	if err != nil {
		return nil, err
	}
	if h.Contact().IsEmpty() {
		return nil, errs.Mark(queue.ErrContactRequired, ErrInvalidInput)
	}
	if params.RoomID == uuid.Nil {
		return nil, ErrInvalidRoom
	}

	var (
		entry *queue.Entry
		ahead int
		eta   int
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockByID(ctx, params.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidRoom
			}
			return err
		}
		if !rm.IsBookable() {
			return ErrInvalidRoom
		}

		if err := tx.Queue().LockRoomLine(ctx, params.RoomID); err != nil {
			return err
		}
		stats, err := tx.Queue().WaitingStats(ctx, params.RoomID)
		if err != nil {
			return err
		}

		e, err := queue.NewEntry(params.RoomID, h, queue.NextPosition(stats.LastPosition))
		if err != nil {
			return errs.Mark(err, ErrInvalidInput)
		}
		if err := tx.Queue().Insert(ctx, e); err != nil {
			return err
		}

		active, err := tx.Leases().FindActiveByRoom(ctx, params.RoomID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		entry, ahead = e, stats.Count
		eta = c.estimate(active, ahead)
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	c.effects.metrics.QueueJoined()
	c.effects.publish(ctx, changefeed.TableQueueEntries, params.RoomID, &h, entry.CreatedAt())
	c.logger.Debug("queue joined",
		"entry_id", entry.ID(),
		"room_id", params.RoomID,
		"position", entry.Position(),
		"ahead", ahead,
		"eta_minutes", eta,
	)

	return &JoinQueueResult{
		Entry:      newQueueEntryView(entry),
		Position:   entry.Position(),
		EtaMinutes: eta,
	}, nil
}

func (c *queueCommandsImpl) estimate(active *lease.Lease, ahead int) int {
	now := c.clock.Now()
	if active == nil || !active.IsActiveAt(now) {
		return c.estimator.Minutes(nil, ahead, now)
	}
	return c.estimator.Minutes(active.Window(), ahead, now)
}

func (c *queueCommandsImpl) CancelEntry(ctx context.Context, params CancelEntryParams) (view *QueueEntryView, err error) {
	ctx, span := tracer.Start(ctx, "QueueCommands.CancelEntry",
		trace.WithAttributes(attribute.String("queue_entry.id", params.EntryID.String())))
	defer func() { endSpan(span, err) }()

	requester, err := buildHolder(params.HolderUserID, params.HolderContact)
	if err != nil {
		return nil, err
	}

	var (
		entry   *queue.Entry
		changed bool
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Queue().FindByIDForUpdate(ctx, params.EntryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		if !e.Holder().Matches(requester) {
			return ErrNotEntryHolder
		}

		entry = e
		changed = e.Cancel(c.clock.Now())
		if !changed {
			return nil
		}
		return tx.Queue().UpdateStatus(ctx, e)
	})
	if err != nil {
		return nil, storeErr(err)
	}

	if changed {
		c.effects.metrics.QueueCancelled()
		h := entry.Holder()
		c.effects.publish(ctx, changefeed.TableQueueEntries, entry.RoomID(), &h, entry.UpdatedAt())
	}

	v := newQueueEntryView(entry)
	return &v, nil
}
