package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

// Default recovery settings.
const (
	DefaultSettleDelay = 10 * time.Second
	DefaultBatchSize   = 100
	DefaultSweepPause  = time.Second

	maxConsecutiveFailures = 5
)

//go:generate mockery --name BatchClient --filename batchclient.go

// BatchClient triggers batch passes and fetches coverage over the admin API.
type BatchClient interface {
	RunBatch(ctx context.Context, limit, offset int64) (*models.BatchReport, error)
	Coverage(ctx context.Context) (models.Coverage, error)
}

// Recovery sweeps the whole catalog once after a stall, window by window,
// until a window comes back empty.
type Recovery struct {
	client      BatchClient
	settleDelay time.Duration
	batchSize   int64
	sweepPause  time.Duration
	clock       Clock
	logger      *zerolog.Logger
}

// NewRecovery returns new Recovery sweeping through provided client.
func NewRecovery(client BatchClient, logger *zerolog.Logger, ops ...func(*Recovery)) *Recovery {
	recovery := &Recovery{
		client:      client,
		settleDelay: DefaultSettleDelay,
		batchSize:   DefaultBatchSize,
		sweepPause:  DefaultSweepPause,
		clock:       systemClock{},
		logger:      logger,
	}

	for _, op := range ops {
		op(recovery)
	}

	return recovery
}

// WithSettleDelay sets the pause before the sweep starts.
func WithSettleDelay(delay time.Duration) func(*Recovery) {
	return func(r *Recovery) {
		r.settleDelay = delay
	}
}

// WithBatchSize sets the window size of sweep batches.
func WithBatchSize(size int64) func(*Recovery) {
	return func(r *Recovery) {
		r.batchSize = size
	}
}

// WithSweepPause sets the pause between sweep batch calls.
func WithSweepPause(pause time.Duration) func(*Recovery) {
	return func(r *Recovery) {
		r.sweepPause = pause
	}
}

// WithRecoveryClock sets the clock used for pacing.
func WithRecoveryClock(clock Clock) func(*Recovery) {
	return func(r *Recovery) {
		r.clock = clock
	}
}

// Run performs one recovery sweep: settle, walk offsets until a batch
// reports zero processed packages, then log final coverage. Batch calls are
// paced with a short pause between windows. Failed calls are counted and
// the sweep moves on to the next window.
func (r *Recovery) Run(ctx context.Context) error {
	r.logger.Info().
		Dur("settle_delay", r.settleDelay).
		Msg("recovery sweep scheduled")

	r.clock.Sleep(ctx, r.settleDelay)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var offset int64
	var failures, consecutiveFailures int

	for {
		report, err := r.client.RunBatch(ctx, r.batchSize, offset)
		if err != nil {
			failures++
			consecutiveFailures++
			r.logger.Error().
				Err(err).
				Int64("offset", offset).
				Msg("can't run recovery batch")

			if consecutiveFailures >= maxConsecutiveFailures {
				r.logger.Error().
					Int("failures", failures).
					Msg("recovery sweep aborted")
				return err
			}

			offset += r.batchSize
			r.clock.Sleep(ctx, r.sweepPause)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		consecutiveFailures = 0

		r.logger.Info().
			Int64("offset", offset).
			Int("processed", report.Processed).
			Int("succeeded", report.Succeeded).
			Int("failed", report.Failed).
			Msg("recovery batch finished")

		if report.Processed == 0 {
			break
		}

		offset += r.batchSize

		r.clock.Sleep(ctx, r.sweepPause)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	coverage, err := r.client.Coverage(ctx)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("can't get final coverage")
		return err
	}

	r.logger.Info().
		Int64("total", coverage.Total).
		Int64("with_price", coverage.WithPrice).
		Int64("with_includes", coverage.WithIncludes).
		Float64("percent", coverage.Percent()).
		Int("failed_batches", failures).
		Msg("recovery sweep finished")

	return nil
}
