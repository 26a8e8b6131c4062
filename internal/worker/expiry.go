// Package worker holds background loops started by the fx lifecycle.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fittingroom/internal/pkg/config"
	"fittingroom/internal/usecase/commands"
)

// ExpirySweeper runs ExpiryCommands.Sweep on a fixed interval. A failed sweep
// is logged and retried on the next tick.
type ExpirySweeper struct {
	cmds     commands.ExpiryCommands
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewExpirySweeper(cmds commands.ExpiryCommands, cfg config.Config, logger *slog.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		cmds:     cmds,
		interval: cfg.Engine.SweepInterval,
		timeout:  cfg.Server.RequestTimeout,
		logger:   logger.With("worker", "expiry_sweeper"),
	}
}

// Run blocks until ctx is done.
func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("expiry sweeper started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			w.sweepOnce(ctx)
		}
	}
}

func (w *ExpirySweeper) sweepOnce(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	if _, err := w.cmds.Sweep(ctx); err != nil && ctx.Err() == nil {
		w.logger.Error("sweep failed", "error", err.Error())
	}
}

func (w *ExpirySweeper) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		w.Run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight sweep, bounded by ctx.
func (w *ExpirySweeper) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
