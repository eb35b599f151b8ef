// Package amqp turns messages from the payment and restaurant services into
// order commands.
//
// Every message is acknowledged exactly once:
//   - handled: ack
//   - refused by the domain, or carrying values that can never be valid: ack and
//     log, since redelivery would fail the same way
//   - unreadable body: nack without requeue
//   - anything else, such as a database outage: nack with requeue
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 16

var (
	// ErrDeliveriesClosed is returned by Run when the broker closed the delivery
	// channel before the context was cancelled.
	ErrDeliveriesClosed = errors.New("delivery channel closed")

	errMalformedMessage = errors.New("malformed message")
)

// deliverySource is satisfied by *rabbitmq.Client.
type deliverySource interface {
	Consume(cfg rabbitmq.ConsumeConfig) (<-chan amqp.Delivery, error)
}

// messageHandler applies one message body.
type messageHandler interface {
	Handle(ctx context.Context, body []byte) error
}

// Consumer reads one queue and dispatches each delivery to a messageHandler.
type Consumer struct {
	source      deliverySource
	queue       string
	handler     messageHandler
	logger      *slog.Logger
	concurrency int
}

func newConsumer(source deliverySource, queue string, handler messageHandler, logger *slog.Logger) *Consumer {
	return &Consumer{
		source:      source,
		queue:       queue,
		handler:     handler,
		logger:      logger.With("component", "amqp-consumer", "queue", queue),
		concurrency: defaultConcurrency,
	}
}

// Run consumes until ctx is cancelled or the broker closes the channel, then
// waits for in-flight messages to finish. Cancellation returns nil.
func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.source.Consume(rabbitmq.ConsumeConfig{
		Queue:    c.queue,
		Consumer: "ordering-" + c.queue,
	})
	if err != nil {
		return err
	}

	c.logger.Info("Consumer started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	var result error
loop:
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stopping consumer")
			break loop
		case msg, ok := <-msgs:
			if !ok {
				c.logger.Warn("Message channel closed")
				result = ErrDeliveriesClosed
				break loop
			}

			g.Go(func() error {
				return c.processMessage(gctx, msg)
			})
		}
	}

	return errors.Join(g.Wait(), result)
}

// processMessage settles a single delivery. Only a failed ack or nack is
// returned, because it means the channel is gone.
func (c *Consumer) processMessage(ctx context.Context, msg amqp.Delivery) error {
	err := c.handler.Handle(ctx, msg.Body)

	switch {
	case err == nil:
		return msg.Ack(false)
	case errors.Is(err, errMalformedMessage):
		c.logger.Error("Dropping malformed message", "delivery_tag", msg.DeliveryTag, "error", err)
		return msg.Nack(false, false)
	case isPermanent(err):
		c.logger.Warn("Message refused", "delivery_tag", msg.DeliveryTag, "error", err)
		return msg.Ack(false)
	default:
		c.logger.Error("Failed to process message, requeueing", "delivery_tag", msg.DeliveryTag, "error", err)
		return msg.Nack(false, true)
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, errs.ErrDomainRuleViolation) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrObjectNotFound)
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Join(errMalformedMessage, err)
	}
	return nil
}
