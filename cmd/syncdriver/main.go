package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/cmd/syncdriver/config"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/monitor"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/pkg/v1/syncclient"
)

// The driver is a best-effort background job: it always exits 0 so a
// scheduler never retries a run that already swept what it could.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().
			Err(err).
			Msg("no .env file loaded")
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Error().
			Err(err).
			Msg("can't parse env variables")
		return
	}

	client := syncclient.New(
		cfg.APIURL,
		cfg.APIToken,
		syncclient.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	// cancel on SIGINT/SIGTERM
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-termChan
		cancel()
	}()

	mntr := monitor.NewMonitor(
		client,
		&logger,
		monitor.WithPollInterval(cfg.PollInterval),
		monitor.WithStallThreshold(cfg.StallThreshold),
	)

	coverage, err := mntr.Wait(ctx)
	switch {
	case err == nil:
		logger.Info().
			Int64("total", coverage.Total).
			Float64("percent", coverage.Percent()).
			Msg("catalog sync complete")
		return
	case errors.Is(err, context.Canceled):
		logger.Info().Msg("sync driver interrupted")
		return
	case !errors.Is(err, monitor.ErrStalled):
		logger.Error().
			Err(err).
			Msg("monitoring failed")
		return
	}

	logger.Warn().
		Int64("progress", coverage.Progress()).
		Int64("total", coverage.Total).
		Msg("scraping stalled, starting recovery sweep")

	recovery := monitor.NewRecovery(
		client,
		&logger,
		monitor.WithSettleDelay(cfg.SettleDelay),
		monitor.WithBatchSize(cfg.RecoveryBatchSize),
		monitor.WithSweepPause(cfg.SweepPause),
	)

	if err := recovery.Run(ctx); err != nil {
		logger.Error().
			Err(err).
			Msg("recovery sweep failed")
	}
}
