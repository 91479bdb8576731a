package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/cmd/scraper/config"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/batch"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/extractor"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/fetcher"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/server"
)

const (
	// UserAgent is user agent header value used when fetching catalog pages.
	UserAgent = "operadora-catalog-sync/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)
	metrics := batch.NewMetrics()

	runner := batch.NewRunner(
		store,
		extractor.NewExtractor(
			fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		),
		cfg.BatchDelay,
		batch.WithMetrics(metrics),
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(runner, store, cfg.ScrapeSecret, cfg.BatchDeadline, metrics.Registry, &logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", cfg.ListenAddr).
			Msg("catalog scraper up and running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("server stopped")
			cancel()
		}
	}()

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.BatchDeadline)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shut down server")
	}

	if err := pgDB.Close(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't close Postgres connection")
	}

	logger.Info().Msg("graceful shutdown successful")
}
