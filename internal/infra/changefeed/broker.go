package changefeed

import (
	"context"
	"log/slog"
	"sync"
)

// Broker fans events out in-process. Each subscription owns a one-slot channel:
// a publish while a signal is still pending coalesces into it, so a slow
// subscriber never blocks writers and never misses the fact that state moved.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	logger *slog.Logger
}

func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		subs:   make(map[uint64]*Subscription),
		logger: logger,
	}
}

type Subscription struct {
	id     uint64
	filter Filter
	ch     chan Event
	broker *Broker
	once   sync.Once
}

// C is closed once the subscription is closed.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Close unsubscribes. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.remove(s.id)
	})
}

func (b *Broker) Subscribe(f Filter) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:     b.nextID,
		filter: f,
		ch:     make(chan Event, 1),
		broker: b,
	}
	b.subs[sub.id] = sub
	return sub
}

// Publish delivers locally. It satisfies Publisher when no external bus is configured.
func (b *Broker) Publish(_ context.Context, e Event) error {
	b.Dispatch(e)
	return nil
}

func (b *Broker) Dispatch(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if !sub.filter.Matches(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			// a signal is already pending for this subscriber
		}
	}
}

func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Shutdown closes every subscription so open streams end.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
	b.logger.Info("change broker stopped", "closed_subscriptions", len(subs))
}
