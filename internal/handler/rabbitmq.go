package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/rabbitmq"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/pkg/v1/commander"
)

// BatchRunner runs one catalog batch pass.
type BatchRunner interface {
	Run(ctx context.Context, limit, offset int64) (*models.BatchReport, error)
}

// RMQHandler handles RMQ sweep commands.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	runner BatchRunner
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, runner BatchRunner, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		runner: runner,
		logger: logger,
	}
}

// Start starts consuming and handling sweep commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Int64("limit", cmd.Limit).
			Int64("offset", cmd.Offset).
			Msg("sweep started")

		report, err := h.runner.Run(ctx, cmd.Limit, cmd.Offset)
		if err != nil {
			return fmt.Errorf("sweep failed: %w", err)
		}

		h.logger.Info().
			Int64("offset", cmd.Offset).
			Int("processed", report.Processed).
			Int("succeeded", report.Succeeded).
			Int("failed", report.Failed).
			Msg("sweep finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.SweepCommand, error) {
	var cmd commander.SweepCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sweep command: %w", err)
	}

	return &cmd, err
}
