package bootstrap

import (
	"context"
	"log/slog"

	"fittingroom/internal/infra/notify"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewContactNotifier,
	),
)

func NewContactNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.ContactNotifier {
	if !cfg.AMQP.Enabled() {
		logger.Info("promotion notices are logged only, AMQP_URL not set")
		return notify.NewLogNotifier(logger)
	}

	n := notify.NewAMQPNotifier(cfg.AMQP, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n
}
