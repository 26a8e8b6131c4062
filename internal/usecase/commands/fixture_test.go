//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fittingroom/internal/infra"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/usecase/shared"
	changefeedmock "fittingroom/tests/mock/changefeed"
	commandsmock "fittingroom/tests/mock/commands"
	sharedmock "fittingroom/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var (
	errNotFound  = infra.RepositoryError{Kind: infra.KindNotFound}
	errDBFailure = infra.RepositoryError{Kind: infra.KindDBFailure}
)

// fixture wires every collaborator of the command usecases to gomock doubles.
// The unit of work simply runs the callback with the mocked transaction.
type fixture struct {
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	rooms     *sharedmock.MockRoomRepository
	leases    *sharedmock.MockLeaseRepository
	queue     *sharedmock.MockQueueRepository
	publisher *changefeedmock.MockPublisher
	notifier  *commandsmock.MockContactNotifier
	metrics   *commandsmock.MockMetrics
	clock     *clock.MockClock
	cfg       config.Config
	logger    *slog.Logger

	published  []changefeed.Event
	publishErr error
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		rooms:     sharedmock.NewMockRoomRepository(ctrl),
		leases:    sharedmock.NewMockLeaseRepository(ctrl),
		queue:     sharedmock.NewMockQueueRepository(ctrl),
		publisher: changefeedmock.NewMockPublisher(ctrl),
		notifier:  commandsmock.NewMockContactNotifier(ctrl),
		metrics:   commandsmock.NewMockMetrics(ctrl),
		clock:     clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)),
		cfg:       config.NewTestConfig(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Leases().Return(f.leases).AnyTimes()
	f.tx.EXPECT().Queue().Return(f.queue).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e changefeed.Event) error {
			f.published = append(f.published, e)
			return f.publishErr
		}).AnyTimes()
	f.metrics.EXPECT().ObserveOperation(gomock.Any(), gomock.Any()).AnyTimes()
	f.metrics.EXPECT().ChangePublished(gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func (f *fixture) publishedTables() []changefeed.Table {
	tables := make([]changefeed.Table, 0, len(f.published))
	for _, e := range f.published {
		tables = append(tables, e.Table)
	}
	return tables
}
