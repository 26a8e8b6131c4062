//go:build unit

package changefeed_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fittingroom/internal/infra/changefeed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BrokerTestSuite struct {
	suite.Suite
	broker *changefeed.Broker
}

func (s *BrokerTestSuite) SetupTest() {
	s.broker = changefeed.NewBroker(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBrokerSuite(t *testing.T) {
	suite.Run(t, new(BrokerTestSuite))
}

func (s *BrokerTestSuite) TestDeliversMatchingEvents() {
	roomA, roomB := uuid.New(), uuid.New()
	all := s.broker.Subscribe(changefeed.Filter{})
	onlyA := s.broker.Subscribe(changefeed.Filter{RoomID: roomA})
	onlyQueue := s.broker.Subscribe(changefeed.Filter{Tables: []changefeed.Table{changefeed.TableQueueEntries}})
	defer all.Close()
	defer onlyA.Close()
	defer onlyQueue.Close()

	s.Require().NoError(s.broker.Publish(context.Background(), changefeed.Event{Table: changefeed.TableLeases, RoomID: roomB}))

	s.Len(all.C(), 1)
	s.Len(onlyA.C(), 0)
	s.Len(onlyQueue.C(), 0)
}

func (s *BrokerTestSuite) TestCoalescesBursts() {
	sub := s.broker.Subscribe(changefeed.Filter{})
	defer sub.Close()

	roomID := uuid.New()
	for i := 0; i < 10; i++ {
		s.broker.Dispatch(changefeed.Event{Table: changefeed.TableQueueEntries, RoomID: roomID})
	}

	// ten mutations, one pending signal; never zero
	s.Len(sub.C(), 1)
	<-sub.C()
	s.Len(sub.C(), 0)

	s.broker.Dispatch(changefeed.Event{Table: changefeed.TableLeases, RoomID: roomID})
	s.Len(sub.C(), 1)
}

func (s *BrokerTestSuite) TestResyncReachesFilteredSubscribers() {
	sub := s.broker.Subscribe(changefeed.Filter{RoomID: uuid.New(), Tables: []changefeed.Table{changefeed.TableLeases}})
	defer sub.Close()

	s.broker.Dispatch(changefeed.Event{Table: changefeed.TableResync})

	e := <-sub.C()
	s.Equal(changefeed.TableResync, e.Table)
}

func (s *BrokerTestSuite) TestCloseIsIdempotent() {
	sub := s.broker.Subscribe(changefeed.Filter{})
	s.Equal(1, s.broker.SubscriberCount())

	sub.Close()
	sub.Close()
	s.Equal(0, s.broker.SubscriberCount())

	_, open := <-sub.C()
	s.False(open)

	// publishing after close must not panic
	s.broker.Dispatch(changefeed.Event{Table: changefeed.TableLeases})
}

func (s *BrokerTestSuite) TestShutdownClosesStreams() {
	a := s.broker.Subscribe(changefeed.Filter{})
	b := s.broker.Subscribe(changefeed.Filter{})
	s.broker.Shutdown()

	_, openA := <-a.C()
	_, openB := <-b.C()
	s.False(openA)
	s.False(openB)
	s.Equal(0, s.broker.SubscriberCount())
}

func TestBrokerConcurrentPublishers(t *testing.T) {
	broker := changefeed.NewBroker(slog.New(slog.NewTextHandler(io.Discard, nil)))
	sub := broker.Subscribe(changefeed.Filter{})
	defer sub.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			broker.Dispatch(changefeed.Event{Table: changefeed.TableQueueEntries, At: time.Now()})
		}()
	}
	wg.Wait()

	select {
	case <-sub.C():
	case <-time.After(time.Second):
		require.Fail(t, "expected a pending signal")
	}
	assert.Len(t, sub.C(), 0)
}
