// Package projection keeps one client's derived view of the store current by
// re-pulling it whenever the change feed signals.
package projection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fittingroom/internal/infra/changefeed"
)

type Loader[T any] func(ctx context.Context) (T, error)

// View holds the last value its loader produced. A failed reload keeps the
// previous value.
type View[T any] struct {
	name   string
	load   Loader[T]
	logger *slog.Logger

	mu       sync.RWMutex
	value    T
	loaded   bool
	failures int
}

func NewView[T any](name string, load Loader[T], logger *slog.Logger) *View[T] {
	return &View[T]{
		name:   name,
		load:   load,
		logger: logger,
	}
}

// Refresh reloads and returns the current value. ok is false until a load has
// succeeded at least once.
func (v *View[T]) Refresh(ctx context.Context) (value T, ok bool) {
	next, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		v.failures++
		v.logger.Warn("projection reload failed, keeping last value",
			"projection", v.name,
			"failures", v.failures,
			"error", err.Error(),
		)
		return v.value, v.loaded
	}

	v.value, v.loaded, v.failures = next, true, 0
	return next, true
}

func (v *View[T]) Value() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.loaded
}

// Follow emits the initial snapshot, then a fresh one after every signal and
// every heartbeat tick. It returns when ctx is done, the signal channel closes,
// or emit fails.
func (v *View[T]) Follow(ctx context.Context, signals <-chan changefeed.Event, heartbeat time.Duration, emit func(T) error) error {
	push := func() error {
		value, ok := v.Refresh(ctx)
		if !ok {
			return nil
		}
		return emit(value)
	}

	if err := push(); err != nil {
		return err
	}

	var tick <-chan time.Time
	if heartbeat > 0 {
		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, open := <-signals:
			if !open {
				return nil
			}
			if err := push(); err != nil {
				return err
			}
		case <-tick:
			if err := push(); err != nil {
				return err
			}
		}
	}
}
