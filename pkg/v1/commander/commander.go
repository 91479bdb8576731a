package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SweepCommand orders one batch pass over a window of the catalog.
type SweepCommand struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

// SweepCommander sends sweep commands.
type SweepCommander struct {
	sender Sender
}

// NewSweepCommander returns new SweepCommander using provided sender for sending messages.
func NewSweepCommander(sender Sender) SweepCommander {
	return SweepCommander{
		sender: sender,
	}
}

// SendSweepCommand sends sweep command with provided limit and offset.
func (c SweepCommander) SendSweepCommand(ctx context.Context, limit, offset int64) error {
	cmd := SweepCommand{
		Limit:  limit,
		Offset: offset,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sweep command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender is the Sender routing sweep commands to the worker queue's
// routing key.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing sweep commands to
// provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
	}
}

// Send publishes one sweep command message to RabbitMQSender's routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	return s.publisher.Publish(ctx, s.cmdRoutingKey, msg)
}
