//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fittingroom/internal/domain/lease"
	"fittingroom/internal/domain/queue"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/commands"
	"fittingroom/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("success: nothing to do", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewExpiryCommands(f.uow, f.publisher, f.notifier, f.metrics, f.clock, f.cfg, f.logger)

		f.queue.EXPECT().ExpireNotifiedBefore(gomock.Any(), f.clock.Now().Add(-f.cfg.Engine.NotifyGrace), f.clock.Now()).Return(nil, nil)
		f.leases.EXPECT().ExpireAllOverdue(gomock.Any(), f.clock.Now()).Return(nil, nil)

		res, err := cmds.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, commands.SweepResult{}, res)
		assert.Empty(t, f.published)
	})

	t.Run("success: expired lease frees the room for the next holder", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewExpiryCommands(f.uow, f.publisher, f.notifier, f.metrics, f.clock, f.cfg, f.logger)
		now := f.clock.Now()

		overdue := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
			b.Status = lease.StatusExpired
			b.StartedAt = now.Add(-6 * time.Minute)
		}).BuildDomain()
		next := builder.NewQueueEntryBuilder().With(func(b *builder.QueueEntryBuilder) { b.RoomID = overdue.RoomID() }).BuildDomain()

		f.queue.EXPECT().ExpireNotifiedBefore(gomock.Any(), gomock.Any(), now).Return(nil, nil)
		f.leases.EXPECT().ExpireAllOverdue(gomock.Any(), now).Return([]*lease.Lease{overdue}, nil)
		f.leases.EXPECT().FindActiveByRoom(gomock.Any(), overdue.RoomID()).Return(nil, errNotFound)
		f.queue.EXPECT().LockRoomLine(gomock.Any(), overdue.RoomID()).Return(nil)
		f.queue.EXPECT().HasOutstandingNotice(gomock.Any(), overdue.RoomID()).Return(false, nil)
		f.queue.EXPECT().NextWaitingForUpdate(gomock.Any(), overdue.RoomID()).Return(next, nil)
		f.queue.EXPECT().UpdateStatus(gomock.Any(), next).Return(nil)
		f.metrics.EXPECT().LeasesExpired(1)
		f.metrics.EXPECT().QueuePromoted()
		f.notifier.EXPECT().NotifyPromoted(gomock.Any(), gomock.Any()).Return(nil)

		res, err := cmds.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, commands.SweepResult{ExpiredLeases: 1, Promoted: 1}, res)
		assert.Equal(t, queue.StatusNotified, next.Status())
		assert.Equal(t, []changefeed.Table{changefeed.TableLeases, changefeed.TableQueueEntries}, f.publishedTables())
	})

	t.Run("success: unanswered notice passes the room on unless it was taken", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewExpiryCommands(f.uow, f.publisher, f.notifier, f.metrics, f.clock, f.cfg, f.logger)
		now := f.clock.Now()

		freeRoom := builder.NewRoomBuilder().BuildDomain()
		takenRoom := builder.NewRoomBuilder().BuildDomain()
		staleFree := builder.NewQueueEntryBuilder().With(func(b *builder.QueueEntryBuilder) {
			b.RoomID = freeRoom.ID()
			b.Status = queue.StatusExpired
		}).BuildDomain()
		staleTaken := builder.NewQueueEntryBuilder().With(func(b *builder.QueueEntryBuilder) {
			b.RoomID = takenRoom.ID()
			b.Status = queue.StatusExpired
		}).BuildDomain()
		taken := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) { b.RoomID = takenRoom.ID() }).BuildDomain()

		f.queue.EXPECT().ExpireNotifiedBefore(gomock.Any(), now.Add(-3*time.Minute), now).Return([]*queue.Entry{staleFree, staleTaken}, nil)
		f.leases.EXPECT().ExpireAllOverdue(gomock.Any(), now).Return(nil, nil)
		f.leases.EXPECT().FindActiveByRoom(gomock.Any(), freeRoom.ID()).Return(nil, errNotFound)
		f.leases.EXPECT().FindActiveByRoom(gomock.Any(), takenRoom.ID()).Return(taken, nil)
		f.queue.EXPECT().LockRoomLine(gomock.Any(), freeRoom.ID()).Return(nil)
		f.queue.EXPECT().HasOutstandingNotice(gomock.Any(), freeRoom.ID()).Return(false, nil)
		f.queue.EXPECT().NextWaitingForUpdate(gomock.Any(), freeRoom.ID()).Return(nil, errNotFound)
		f.metrics.EXPECT().NotifiedExpired(2)

		res, err := cmds.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, commands.SweepResult{ExpiredNotified: 2}, res)
		assert.Equal(t, []changefeed.Table{changefeed.TableQueueEntries, changefeed.TableQueueEntries}, f.publishedTables())
	})

	t.Run("success: notice still inside its grace window holds the room", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewExpiryCommands(f.uow, f.publisher, f.notifier, f.metrics, f.clock, f.cfg, f.logger)
		now := f.clock.Now()

		overdue := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
			b.Status = lease.StatusExpired
			b.StartedAt = now.Add(-6 * time.Minute)
		}).BuildDomain()

		f.queue.EXPECT().ExpireNotifiedBefore(gomock.Any(), gomock.Any(), now).Return(nil, nil)
		f.leases.EXPECT().ExpireAllOverdue(gomock.Any(), now).Return([]*lease.Lease{overdue}, nil)
		f.leases.EXPECT().FindActiveByRoom(gomock.Any(), overdue.RoomID()).Return(nil, errNotFound)
		f.queue.EXPECT().LockRoomLine(gomock.Any(), overdue.RoomID()).Return(nil)
		f.queue.EXPECT().HasOutstandingNotice(gomock.Any(), overdue.RoomID()).Return(true, nil)
		f.metrics.EXPECT().LeasesExpired(1)

		res, err := cmds.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, commands.SweepResult{ExpiredLeases: 1}, res)
		assert.Equal(t, []changefeed.Table{changefeed.TableLeases}, f.publishedTables())
	})

	t.Run("error: outstanding notice check fails", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewExpiryCommands(f.uow, f.publisher, f.notifier, f.metrics, f.clock, f.cfg, f.logger)
		now := f.clock.Now()

		overdue := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) { b.Status = lease.StatusExpired }).BuildDomain()

		f.queue.EXPECT().ExpireNotifiedBefore(gomock.Any(), gomock.Any(), now).Return(nil, nil)
		f.leases.EXPECT().ExpireAllOverdue(gomock.Any(), now).Return([]*lease.Lease{overdue}, nil)
		f.leases.EXPECT().FindActiveByRoom(gomock.Any(), overdue.RoomID()).Return(nil, errNotFound)
		f.queue.EXPECT().LockRoomLine(gomock.Any(), overdue.RoomID()).Return(nil)
		f.queue.EXPECT().HasOutstandingNotice(gomock.Any(), overdue.RoomID()).Return(false, errDBFailure)

		res, err := cmds.Sweep(ctx)

		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
		assert.Equal(t, commands.SweepResult{}, res)
		assert.Empty(t, f.published)
	})

	t.Run("error: store failure rolls back and reports nothing", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewExpiryCommands(f.uow, f.publisher, f.notifier, f.metrics, f.clock, f.cfg, f.logger)

		f.queue.EXPECT().ExpireNotifiedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.leases.EXPECT().ExpireAllOverdue(gomock.Any(), gomock.Any()).Return(nil, errDBFailure)

		res, err := cmds.Sweep(ctx)

		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
		assert.Equal(t, commands.SweepResult{}, res)
		assert.Empty(t, f.published)
	})
}
