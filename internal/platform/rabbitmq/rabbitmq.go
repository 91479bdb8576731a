// Package rabbitmq is a thin AMQP layer for consuming and publishing
// catalog sweep commands.
package rabbitmq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc handles a single message body.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ consumes and publishes amqp messages on one channel.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	prefetch  int
	isRunning chan struct{}
}

// NewRabbitMQ opens a channel on provided connection and returns new RabbitMQ.
func NewRabbitMQ(connection *amqp.Connection, exchange string, ops ...func(*RabbitMQ)) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	mq := RabbitMQ{
		channel:  channel,
		exchange: exchange,
		prefetch: 1,
	}

	for _, op := range ops {
		op(&mq)
	}

	return &mq, nil
}

// WithPrefetch sets how many unacknowledged deliveries the channel accepts.
func WithPrefetch(count int) func(*RabbitMQ) {
	return func(mq *RabbitMQ) {
		mq.prefetch = count
	}
}

// Publish publishes a JSON message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType: "application/json",
		Body:        message,
	}

	return mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	)
}

// Consume consumes messages from queue and passes delivery bodies to the
// handler. It returns a channel with handler and delivery errors, and keeps
// consuming in background until the deliveries channel closes or ctx ends.
// A failed message is requeued once; a redelivered failure is dropped.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	if err := mq.channel.Qos(mq.prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("can't set channel QoS: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		uuid.NewString(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for delivery := range deliveries {
		if err := handler(ctx, delivery.Body); err != nil {
			_ = pushError(ctx, err, consumingErrors)
			if err := mq.settle(ctx, &delivery, false, consumingErrors); err != nil {
				return
			}
		} else if err := mq.settle(ctx, &delivery, true, consumingErrors); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (mq *RabbitMQ) settle(
	ctx context.Context,
	delivery *amqp.Delivery,
	handled bool,
	consumingErrors chan error,
) error {
	var err error
	if handled {
		err = delivery.Ack(false)
	} else {
		err = delivery.Nack(false, !delivery.Redelivered)
	}

	if err != nil {
		if pushErr := pushError(ctx, fmt.Errorf("can't settle message: %w", err), consumingErrors); pushErr != nil {
			return pushErr
		}
	}

	return nil
}

// Done returns channel which will be closed when consuming finishes.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
