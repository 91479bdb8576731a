package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/server"
)

const testSecret = "test-secret"

type stubRunner struct {
	calls  int
	report *models.BatchReport
	err    error
}

func (r *stubRunner) Run(_ context.Context, _, _ int64) (*models.BatchReport, error) {
	r.calls++
	return r.report, r.err
}

type stubStats struct {
	calls    int
	coverage models.Coverage
	err      error
}

func (s *stubStats) Coverage(_ context.Context) (models.Coverage, error) {
	s.calls++
	return s.coverage, s.err
}

func newTestServer(runner *stubRunner, stats *stubStats) http.Handler {
	logger := zerolog.Nop()
	srv := server.New(runner, stats, testSecret, time.Minute, prometheus.NewRegistry(), &logger)
	return srv.Router()
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "can't encode request body")
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestUnitScrapeBatch(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{report: &models.BatchReport{
		Processed: 2,
		Succeeded: 1,
		Failed:    1,
		Outcomes: []models.BatchOutcome{
			{ExternalCode: "MT-12117", Status: models.OutcomeSuccess},
			{ExternalCode: "MT-12200", Status: models.OutcomeError, Error: "can't extract package: boom"},
		},
	}}
	handler := newTestServer(runner, &stubStats{})

	rec := doRequest(t, handler, http.MethodPost, "/admin/scrape-batch", testSecret, map[string]int64{"limit": 10, "offset": 0})

	require.Equal(t, http.StatusOK, rec.Code, "unexpected status code")
	assert.Equal(t, 1, runner.calls, "runner should be called once")

	var body struct {
		Success   bool                  `json:"success"`
		Processed int                   `json:"processed"`
		Succeeded int                   `json:"succeeded"`
		Failed    int                   `json:"failed"`
		Results   []models.BatchOutcome `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "can't decode response body")
	assert.True(t, body.Success, "response should be successful")
	assert.Equal(t, 2, body.Processed, "wrong processed count")
	assert.Equal(t, 1, body.Succeeded, "wrong succeeded count")
	assert.Equal(t, 1, body.Failed, "wrong failed count")
	assert.Len(t, body.Results, 2, "wrong results length")
}

func TestUnitScrapeBatchValidation(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		body any
	}{
		"zero limit": {
			body: map[string]int64{"limit": 0, "offset": 0},
		},
		"negative offset": {
			body: map[string]int64{"limit": 10, "offset": -1},
		},
		"not json": {
			body: "not json",
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			runner := &stubRunner{report: &models.BatchReport{}}
			handler := newTestServer(runner, &stubStats{})

			var rec *httptest.ResponseRecorder
			if raw, ok := tc.body.(string); ok {
				req := httptest.NewRequest(http.MethodPost, "/admin/scrape-batch", bytes.NewBufferString(raw))
				req.Header.Set("Authorization", "Bearer "+testSecret)
				rec = httptest.NewRecorder()
				handler.ServeHTTP(rec, req)
			} else {
				rec = doRequest(t, handler, http.MethodPost, "/admin/scrape-batch", testSecret, tc.body)
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code, "unexpected status code")
			assert.Zero(t, runner.calls, "runner should not be called")
		})
	}
}

func TestUnitScrapeBatchRunnerError(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{err: errors.New("can't select batch: connection refused")}
	handler := newTestServer(runner, &stubStats{})

	rec := doRequest(t, handler, http.MethodPost, "/admin/scrape-batch", testSecret, map[string]int64{"limit": 10, "offset": 0})

	require.Equal(t, http.StatusInternalServerError, rec.Code, "unexpected status code")

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "can't decode response body")
	assert.False(t, body.Success, "response should not be successful")
	assert.Contains(t, body.Error, "can't select batch", "error message should carry the cause")
}

func TestUnitAuthBoundary(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		token string
	}{
		"missing token": {
			token: "",
		},
		"wrong token": {
			token: "wrong-secret",
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			runner := &stubRunner{report: &models.BatchReport{}}
			stats := &stubStats{}
			handler := newTestServer(runner, stats)

			recBatch := doRequest(t, handler, http.MethodPost, "/admin/scrape-batch", tc.token, map[string]int64{"limit": 10, "offset": 0})
			recCoverage := doRequest(t, handler, http.MethodGet, "/admin/coverage", tc.token, nil)

			assert.Equal(t, http.StatusUnauthorized, recBatch.Code, "batch endpoint should reject the request")
			assert.Equal(t, http.StatusUnauthorized, recCoverage.Code, "coverage endpoint should reject the request")
			assert.Zero(t, runner.calls, "runner should not be touched")
			assert.Zero(t, stats.calls, "stats should not be touched")
		})
	}
}

func TestUnitCoverageEndpoint(t *testing.T) {
	t.Parallel()

	stats := &stubStats{coverage: models.Coverage{
		Total:        120,
		WithPrice:    80,
		WithIncludes: 75,
		Scraped:      90,
	}}
	handler := newTestServer(&stubRunner{}, stats)

	rec := doRequest(t, handler, http.MethodGet, "/admin/coverage", testSecret, nil)

	require.Equal(t, http.StatusOK, rec.Code, "unexpected status code")

	var coverage models.Coverage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &coverage), "can't decode response body")
	assert.Equal(t, stats.coverage, coverage, "unexpected coverage payload")
}

func TestUnitMetricsEndpoint(t *testing.T) {
	t.Parallel()

	handler := newTestServer(&stubRunner{}, &stubStats{})

	rec := doRequest(t, handler, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code, "metrics endpoint should not require auth")
}
