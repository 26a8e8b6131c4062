package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"fittingroom/internal/handler/api"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ChangeFeedModule provides the local broker to streams and a publisher to
// writers. With Redis configured the publisher is the cross-instance relay.
var ChangeFeedModule = fx.Module("changefeed",
	fx.Provide(
		fx.Annotate(
			NewBroker,
			fx.As(fx.Self()),
			fx.As(new(api.ChangeSubscriber)),
		),
		NewPublisher,
	),
)

func NewBroker(lc fx.Lifecycle, logger *slog.Logger) *changefeed.Broker {
	broker := changefeed.NewBroker(logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			broker.Shutdown()
			return nil
		},
	})
	return broker
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config, broker *changefeed.Broker, logger *slog.Logger) (changefeed.Publisher, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("change feed is in-process only, REDIS_ADDR not set")
		return broker, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	bus := changefeed.NewRedisBus(client, cfg.Redis.Channel, instanceID(), broker, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := client.Ping(startCtx).Err(); err != nil {
				return err
			}
			go func() {
				defer close(done)
				if err := bus.Run(ctx); err != nil {
					logger.Error("change relay stopped", "error", err.Error())
				}
			}()
			logger.Info("change relay started", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return client.Close()
		},
	})
	return bus, nil
}

func instanceID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "fittingroom"
	}
	return host + "-" + uuid.NewString()[:8]
}
