package bootstrap

import (
	"context"
	"log/slog"

	"fittingroom/internal/infra/metrics"
	"fittingroom/internal/infra/telemetry"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/usecase/commands"
	"fittingroom/internal/usecase/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(commands.Metrics)),
			fx.As(new(queries.OccupancyGauges)),
		),
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(StartTelemetry),
)

func StartTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown telemetry.ShutdownFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.Setup(ctx, cfg.Telemetry, logger)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
