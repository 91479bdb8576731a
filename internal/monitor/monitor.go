// Package monitor watches catalog coverage and drives recovery sweeps
// when scraping stops making progress.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

// Default monitor settings.
const (
	DefaultPollInterval   = 30 * time.Second
	DefaultStallThreshold = 3
)

//go:generate mockery --name Stats --filename stats.go

// Stats provides aggregate catalog coverage.
type Stats interface {
	Coverage(ctx context.Context) (models.Coverage, error)
}

// Clock provides time and pacing suspensions.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type systemClock struct{}

func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c systemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Monitor polls coverage at a fixed interval and reports when scraping
// either completed or stalled. Progress state is kept per instance, so
// concurrent monitors don't disturb each other.
type Monitor struct {
	stats          Stats
	pollInterval   time.Duration
	stallThreshold int
	clock          Clock
	logger         *zerolog.Logger

	lastProgress int64
	noProgress   int
}

// NewMonitor returns new Monitor polling provided stats.
func NewMonitor(stats Stats, logger *zerolog.Logger, ops ...func(*Monitor)) *Monitor {
	monitor := &Monitor{
		stats:          stats,
		pollInterval:   DefaultPollInterval,
		stallThreshold: DefaultStallThreshold,
		clock:          systemClock{},
		logger:         logger,
	}

	for _, op := range ops {
		op(monitor)
	}

	return monitor
}

// WithPollInterval sets the interval between coverage polls.
func WithPollInterval(interval time.Duration) func(*Monitor) {
	return func(m *Monitor) {
		m.pollInterval = interval
	}
}

// WithStallThreshold sets how many consecutive polls without progress
// count as a stall.
func WithStallThreshold(threshold int) func(*Monitor) {
	return func(m *Monitor) {
		m.stallThreshold = threshold
	}
}

// WithClock sets the clock used for pacing.
func WithClock(clock Clock) func(*Monitor) {
	return func(m *Monitor) {
		m.clock = clock
	}
}

// Wait blocks until every eligible package has both price and includes,
// or until progress stalls. It returns the last observed coverage and
// ErrStalled when the plateau threshold is reached.
func (m *Monitor) Wait(ctx context.Context) (models.Coverage, error) {
	var coverage models.Coverage

	for {
		var err error
		coverage, err = m.stats.Coverage(ctx)
		if err != nil {
			// fetch errors count toward the stall threshold
			m.noProgress++
			m.logger.Warn().
				Err(err).
				Int("no_progress_polls", m.noProgress).
				Msg("can't get coverage")
		} else {
			if coverage.Complete() {
				m.logger.Info().
					Int64("total", coverage.Total).
					Msg("catalog coverage complete")
				return coverage, nil
			}

			progress := coverage.Progress()
			if progress > m.lastProgress {
				m.lastProgress = progress
				m.noProgress = 0
			} else {
				m.noProgress++
			}

			m.logger.Info().
				Int64("progress", progress).
				Int64("total", coverage.Total).
				Int("no_progress_polls", m.noProgress).
				Msg("coverage polled")
		}

		if m.noProgress >= m.stallThreshold {
			return coverage, fmt.Errorf("%w: no progress for %d polls", ErrStalled, m.noProgress)
		}

		m.clock.Sleep(ctx, m.pollInterval)
		if ctx.Err() != nil {
			return coverage, ctx.Err()
		}
	}
}
