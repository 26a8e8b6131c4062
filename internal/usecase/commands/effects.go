package commands

import (
	"context"
	"log/slog"
	"time"

	"fittingroom/internal/domain/holder"
	"fittingroom/internal/domain/queue"
	"fittingroom/internal/infra"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("fittingroom/usecase/commands")

// sideEffects runs after commit. Failures here are logged, never returned:
// the write already happened and subscribers re-pull on their heartbeat anyway.
type sideEffects struct {
	publisher   changefeed.Publisher
	notifier    ContactNotifier
	metrics     Metrics
	logger      *slog.Logger
	notifyGrace time.Duration
}

func (s sideEffects) publish(ctx context.Context, table changefeed.Table, roomID uuid.UUID, h *holder.Holder, at time.Time) {
	e := changefeed.Event{Table: table, RoomID: roomID, At: at}
	if h != nil {
		e.HolderKey = h.Key()
	}
	err := s.publisher.Publish(ctx, e)
	s.metrics.ChangePublished(string(table), err)
	if err != nil {
		s.logger.Warn("failed to publish change", "table", table, "room_id", roomID, "error", err.Error())
	}
}

func (s sideEffects) notifyPromoted(ctx context.Context, entries []*queue.Entry) {
	for _, e := range entries {
		s.metrics.QueuePromoted()

		notifiedAt := e.UpdatedAt()
		if e.NotifiedAt() != nil {
			notifiedAt = *e.NotifiedAt()
		}
		p := Promotion{
			EntryID:       e.ID(),
			RoomID:        e.RoomID(),
			HolderUserID:  e.Holder().UserID(),
			HolderContact: e.Holder().Contact().String(),
			Position:      e.Position(),
			NotifiedAt:    notifiedAt,
			RespondBy:     notifiedAt.Add(s.notifyGrace),
		}
		if err := s.notifier.NotifyPromoted(ctx, p); err != nil {
			s.logger.Warn("failed to dispatch promotion notice", "entry_id", e.ID(), "error", err.Error())
		}
	}
}

// promoteNext moves the earliest waiting entry of a freed room to notified.
// It returns nil when nobody is waiting or an earlier notice for the room is
// still outstanding.
func promoteNext(ctx context.Context, tx shared.Tx, roomID uuid.UUID, now time.Time) (*queue.Entry, error) {
	if err := tx.Queue().LockRoomLine(ctx, roomID); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	pending, err := tx.Queue().HasOutstandingNotice(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if pending {
		return nil, nil
	}

	next, err := tx.Queue().NextWaitingForUpdate(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if err := next.Notify(now); err != nil {
		return nil, errs.Wrap(err, "promote queue entry")
	}
	if err := tx.Queue().UpdateStatus(ctx, next); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return next, nil
}

// storeErr marks anything that is not already a usecase sentinel as a store failure.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrRoomOccupied, ErrInvalidRoom, ErrEntryNotFound, ErrLeaseNotFound, ErrLeaseNotActive, ErrInvalidInput, ErrNotEntryHolder, ErrStoreUnavailable} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrStoreUnavailable)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func buildHolder(userID *uuid.UUID, contact string) (holder.Holder, error) {
	c, err := holder.NewContact(contact)
	if err != nil {
		return holder.Holder{}, errs.Mark(err, ErrInvalidInput)
	}
	h, err := holder.NewHolder(userID, c)
	if err != nil {
		return holder.Holder{}, errs.Mark(err, ErrInvalidInput)
	}
	return h, nil
}
