package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fittingroom/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrPublishFailed = errs.New("failed to publish change event")

// RedisBus relays events between service instances over one pub/sub channel.
// Local subscribers are served first so a Redis outage only loses cross-instance fan-out.
type RedisBus struct {
	client  redis.UniversalClient
	channel string
	origin  string
	local   *Broker
	logger  *slog.Logger
}

func NewRedisBus(client redis.UniversalClient, channel, origin string, local *Broker, logger *slog.Logger) *RedisBus {
	return &RedisBus{
		client:  client,
		channel: channel,
		origin:  origin,
		local:   local,
		logger:  logger,
	}
}

func (b *RedisBus) Publish(ctx context.Context, e Event) error {
	b.local.Dispatch(e)

	e.Origin = b.origin
	payload, err := json.Marshal(e)
	if err != nil {
		return errs.Mark(err, ErrPublishFailed)
	}
	if err := b.client.Publish(ctx, b.channel, string(payload)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "redis publish"), ErrPublishFailed)
	}
	return nil
}

// Run relays remote events into the local broker until ctx is done. Every
// resubscription after the first one is reported as a resync so streams reload.
func (b *RedisBus) Run(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			b.logger.Warn("failed to close redis subscription", "error", err.Error())
		}
	}()

	msgs := pubsub.ChannelWithSubscriptions(redis.WithChannelHealthCheckInterval(30 * time.Second))
	subscribed := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-msgs:
			if !ok {
				return nil
			}
			b.handle(m, &subscribed)
		}
	}
}

func (b *RedisBus) handle(m any, subscribed *bool) {
	switch msg := m.(type) {
	case *redis.Subscription:
		if msg.Kind != "subscribe" {
			return
		}
		if *subscribed {
			b.logger.Warn("change relay resubscribed, forcing resync", "channel", msg.Channel)
			b.local.Dispatch(Event{Table: TableResync, At: time.Now()})
		}
		*subscribed = true
	case *redis.Message:
		var e Event
		if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
			b.logger.Warn("dropping malformed change event", "error", err.Error())
			return
		}
		if e.Origin == b.origin {
			return
		}
		b.local.Dispatch(e)
	}
}
