package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

// BatchRunner runs one batch driver pass.
type BatchRunner interface {
	Run(ctx context.Context, limit, offset int64) (*models.BatchReport, error)
}

// Stats provides aggregate catalog coverage.
type Stats interface {
	Coverage(ctx context.Context) (models.Coverage, error)
}

// Server is the authenticated control surface of the catalog sync: it runs
// one batch pass per request, synchronously, within a bounded deadline.
type Server struct {
	runner        BatchRunner
	stats         Stats
	secret        string
	batchDeadline time.Duration
	registry      *prometheus.Registry
	logger        *zerolog.Logger
}

// New returns new Server.
func New(
	runner BatchRunner,
	stats Stats,
	secret string,
	batchDeadline time.Duration,
	registry *prometheus.Registry,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		runner:        runner,
		stats:         stats,
		secret:        secret,
		batchDeadline: batchDeadline,
		registry:      registry,
		logger:        logger,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogger)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(s.authorize)
	admin.HandleFunc("/scrape-batch", s.handleScrapeBatch).Methods(http.MethodPost)
	admin.HandleFunc("/coverage", s.handleCoverage).Methods(http.MethodGet)

	if s.registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return router
}

type scrapeBatchRequest struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

type scrapeBatchResponse struct {
	Success   bool                  `json:"success"`
	Processed int                   `json:"processed"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Results   []models.BatchOutcome `json:"results"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleScrapeBatch(wrt http.ResponseWriter, req *http.Request) {
	var body scrapeBatchRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(wrt, http.StatusBadRequest, errorResponse{Error: "can't decode request body"})
		return
	}

	if body.Limit <= 0 || body.Offset < 0 {
		writeJSON(wrt, http.StatusBadRequest, errorResponse{Error: "limit must be positive and offset non-negative"})
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), s.batchDeadline)
	defer cancel()

	report, err := s.runner.Run(ctx, body.Limit, body.Offset)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("limit", body.Limit).
			Int64("offset", body.Offset).
			Msg("batch failed")
		writeJSON(wrt, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Info().
		Int64("offset", body.Offset).
		Int("processed", report.Processed).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("batch finished")

	writeJSON(wrt, http.StatusOK, scrapeBatchResponse{
		Success:   true,
		Processed: report.Processed,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Results:   report.Outcomes,
	})
}

func (s *Server) handleCoverage(wrt http.ResponseWriter, req *http.Request) {
	coverage, err := s.stats.Coverage(req.Context())
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("can't get coverage")
		writeJSON(wrt, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(wrt, http.StatusOK, coverage)
}

func writeJSON(wrt http.ResponseWriter, status int, body any) {
	wrt.Header().Set("Content-Type", "application/json")
	wrt.WriteHeader(status)
	_ = json.NewEncoder(wrt).Encode(body)
}
