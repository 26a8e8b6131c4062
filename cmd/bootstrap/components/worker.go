package components

import (
	"context"

	"fittingroom/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewExpirySweeper,
	),
	fx.Invoke(func(lc fx.Lifecycle, sweeper *worker.ExpirySweeper) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				sweeper.Start()
				return nil
			},
			OnStop: sweeper.Stop,
		})
	}),
)
