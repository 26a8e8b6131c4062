package commands

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/lease"
	"fittingroom/internal/domain/queue"
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

// a lease that blocks our insert can be released before we read it back
const maxLeaseAttempts = 3

var errBlockingLeaseGone = errs.New("blocking lease ended before it could be read")

type CreateLeaseParams struct {
	RoomID        uuid.UUID
	HolderContact string
	HolderUserID  *uuid.UUID
}

type LeaseCommands interface {
	CreateLease(ctx context.Context, params CreateLeaseParams) (*LeaseView, error)
	ReleaseLease(ctx context.Context, leaseID uuid.UUID) (*LeaseView, error)
}

type leaseCommandsImpl struct {
	uow     shared.UnitOfWork
	effects sideEffects
	clock   clock.Clock
	cfg     config.EngineConfig
	logger  *slog.Logger
}

func NewLeaseCommands(
	uow shared.UnitOfWork,
	publisher changefeed.Publisher,
	notifier ContactNotifier,
	metrics Metrics,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) LeaseCommands {
	return &leaseCommandsImpl{
		uow: uow,
		effects: sideEffects{
			publisher:   publisher,
			notifier:    notifier,
			metrics:     metrics,
			logger:      logger,
			notifyGrace: cfg.Engine.NotifyGrace,
		},
		clock:  clk,
		cfg:    cfg.Engine,
		logger: logger,
	}
}

func (c *leaseCommandsImpl) CreateLease(ctx context.Context, params CreateLeaseParams) (view *LeaseView, err error) {
	ctx, span := tracer.Start(ctx, "LeaseCommands.CreateLease",
		trace.WithAttributes(attribute.String("room.id", params.RoomID.String())))
	start := time.Now()
	defer func() {
		c.effects.metrics.ObserveOperation("create_lease", time.Since(start))
		endSpan(span, err)
	}()

	h, err := buildHolder(params.HolderUserID, params.HolderContact)
	if err != nil {
		c.effects.metrics.LeaseAttempt(OutcomeRejected)
		return nil, err
	}
	if params.RoomID == uuid.Nil {
		c.effects.metrics.LeaseAttempt(OutcomeRejected)
		return nil, ErrInvalidRoom
	}

	for attempt := 1; attempt <= maxLeaseAttempts; attempt++ {
		view, err = c.tryCreateLease(ctx, params.RoomID, h)
		if !errs.Is(err, errBlockingLeaseGone) {
			break
		}
		c.logger.Debug("blocking lease ended mid-attempt, retrying", "room_id", params.RoomID, "attempt", attempt)
	}
	if errs.Is(err, errBlockingLeaseGone) {
		err = errs.Mark(err, ErrStoreUnavailable)
	}

	switch {
	case err == nil:
		c.effects.metrics.LeaseAttempt(OutcomeGranted)
	case errs.Is(err, ErrRoomOccupied):
		c.effects.metrics.LeaseAttempt(OutcomeConflict)
	case errs.Is(err, ErrInvalidRoom):
		c.effects.metrics.LeaseAttempt(OutcomeRejected)
	default:
		c.effects.metrics.LeaseAttempt(OutcomeError)
	}
	return view, err
}

func (c *leaseCommandsImpl) tryCreateLease(ctx context.Context, roomID uuid.UUID, h holder.Holder) (*LeaseView, error) {
	var (
		created  *lease.Lease
		conflict *ConflictError
		expired  int64
		now      time.Time
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, conflict, expired = nil, nil, 0

		rm, err := tx.Rooms().LockByID(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidRoom
			}
			return err
		}
		if !rm.IsBookable() {
			return ErrInvalidRoom
		}

		now = c.clock.Now()
		if expired, err = tx.Leases().ExpireOverdue(ctx, roomID, now); err != nil {
			return err
		}

		candidate, err := lease.NewLease(roomID, h, now, c.cfg.LeaseDuration)
		if err != nil {
			return errs.Mark(err, ErrInvalidInput)
		}

		inserted, err := tx.Leases().InsertIfAbsent(ctx, candidate)
		if err != nil {
			return err
		}
		if inserted {
			created = candidate
			return nil
		}

		current, err := tx.Leases().FindActiveByRoom(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errBlockingLeaseGone
			}
			return err
		}
		conflict = &ConflictError{Current: newLeaseView(current)}
		// commit so lazily expired rows stay expired
		return nil
	})
	if err != nil {
		if errs.Is(err, errBlockingLeaseGone) {
			return nil, err
		}
		return nil, storeErr(err)
	}

	if created != nil || expired > 0 {
		c.effects.publish(ctx, changefeed.TableLeases, roomID, &h, now)
	}
	if conflict != nil {
		return nil, conflict
	}

	v := newLeaseView(created)
	return &v, nil
}

func (c *leaseCommandsImpl) ReleaseLease(ctx context.Context, leaseID uuid.UUID) (view *LeaseView, err error) {
	ctx, span := tracer.Start(ctx, "LeaseCommands.ReleaseLease",
		trace.WithAttributes(attribute.String("lease.id", leaseID.String())))
	defer func() { endSpan(span, err) }()

	var (
		released *lease.Lease
		promoted *queue.Entry
		now      time.Time
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		released, promoted = nil, nil

		l, err := tx.Leases().FindByIDForUpdate(ctx, leaseID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLeaseNotFound
			}
			return err
		}

		now = c.clock.Now()
		if !l.IsActiveAt(now) {
			return ErrLeaseNotActive
		}
		if err := l.Complete(); err != nil {
			return ErrLeaseNotActive
		}
		if err := tx.Leases().UpdateStatus(ctx, l, now); err != nil {
			return err
		}
		released = l

		promoted, err = promoteNext(ctx, tx, l.RoomID(), now)
		return err
	})
	if err != nil {
		return nil, storeErr(err)
	}

	c.effects.metrics.LeaseReleased()
	h := released.Holder()
	c.effects.publish(ctx, changefeed.TableLeases, released.RoomID(), &h, now)
	if promoted != nil {
		c.effects.publish(ctx, changefeed.TableQueueEntries, released.RoomID(), nil, now)
		c.effects.notifyPromoted(ctx, []*queue.Entry{promoted})
	}

	v := newLeaseView(released)
	return &v, nil
}
