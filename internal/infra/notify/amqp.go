// Package notify hands promotion notices to the contact channel. Delivering the
// SMS or push message is the consumer's job; this side only enqueues.
package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"fittingroom/internal/pkg/config"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrDispatchFailed = errs.New("promotion notice could not be enqueued")

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func(url, queue string) (amqpChannel, io.Closer, error)

// AMQPNotifier publishes one persistent JSON message per promotion to a durable
// queue. The connection is opened on first use and reopened after a failure.
type AMQPNotifier struct {
	url    string
	queue  string
	dial   dialFunc
	logger *slog.Logger

	mu   sync.Mutex
	ch   amqpChannel
	conn io.Closer
}

func NewAMQPNotifier(cfg config.AMQPConfig, logger *slog.Logger) *AMQPNotifier {
	return newAMQPNotifier(cfg, dialAMQP, logger)
}

func newAMQPNotifier(cfg config.AMQPConfig, dial dialFunc, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		url:    cfg.URL,
		queue:  cfg.Queue,
		dial:   dial,
		logger: logger,
	}
}

func dialAMQP(url, queue string) (amqpChannel, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "amqp dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "amqp channel")
	}
	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "amqp queue declare")
	}
	return ch, conn, nil
}

func (n *AMQPNotifier) NotifyPromoted(ctx context.Context, p commands.Promotion) error {
	msg, err := buildPublishing(p)
	if err != nil {
		return errs.Mark(err, ErrDispatchFailed)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	// one reconnect per message; a broker that stays down fails fast
	for attempt := 0; attempt < 2; attempt++ {
		if n.ch == nil {
			ch, conn, err := n.dial(n.url, n.queue)
			if err != nil {
				return errs.Mark(err, ErrDispatchFailed)
			}
			n.ch, n.conn = ch, conn
		}

		err = n.ch.PublishWithContext(ctx, "", n.queue, false, false, msg)
		if err == nil {
			n.logger.Debug("promotion notice enqueued", "entry_id", p.EntryID, "queue", n.queue)
			return nil
		}
		n.logger.Warn("amqp publish failed, reconnecting", "attempt", attempt+1, "error", err.Error())
		n.reset()
	}
	return errs.Mark(err, ErrDispatchFailed)
}

func buildPublishing(p commands.Promotion) (amqp.Publishing, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return amqp.Publishing{}, errs.Wrap(err, "marshal promotion")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    p.EntryID.String(),
		Type:         "queue.promoted",
		Timestamp:    p.NotifiedAt.UTC().Truncate(time.Second),
		Body:         body,
	}, nil
}

// reset must be called with mu held.
func (n *AMQPNotifier) reset() {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
	n.ch, n.conn = nil, nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reset()
	return nil
}
