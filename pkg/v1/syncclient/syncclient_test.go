package syncclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/pkg/v1/syncclient"
)

const (
	testBaseURL = "http://api.example.com"
	testToken   = "test-token"
)

func newTestClient(t *testing.T) *syncclient.Client {
	t.Helper()

	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return syncclient.New(testBaseURL, testToken, syncclient.WithHTTPClient(httpClient))
}

func TestUnitRunBatch(t *testing.T) {
	client := newTestClient(t)

	var gotAuth string
	var gotBody map[string]int64
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/admin/scrape-batch",
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			payload, err := io.ReadAll(req.Body)
			require.NoError(t, err, "can't read request body")
			require.NoError(t, json.Unmarshal(payload, &gotBody), "can't decode request body")

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"success":   true,
				"processed": 2,
				"succeeded": 2,
				"failed":    0,
				"results": []map[string]any{
					{"external_code": "MT-12117", "status": "success"},
					{"external_code": "MT-12200", "status": "success"},
				},
			})
		})

	report, err := client.RunBatch(context.TODO(), 10, 20)

	require.NoError(t, err, "should run batch without errors")
	assert.Equal(t, "Bearer "+testToken, gotAuth, "should send bearer token")
	assert.Equal(t, map[string]int64{"limit": 10, "offset": 20}, gotBody, "should send limit and offset")
	assert.Equal(t, 2, report.Processed, "wrong processed count")
	assert.Equal(t, 2, report.Succeeded, "wrong succeeded count")
	assert.Len(t, report.Outcomes, 2, "wrong outcomes length")
}

func TestUnitRunBatchError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/admin/scrape-batch",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"success":false,"error":"can't select batch"}`))

	report, err := client.RunBatch(context.TODO(), 10, 0)

	require.ErrorIs(t, err, syncclient.ErrRequestFailed, "should return request failed error")
	assert.ErrorContains(t, err, "can't select batch", "error should carry the server message")
	assert.Nil(t, report, "report should be nil")
}

func TestUnitCoverage(t *testing.T) {
	client := newTestClient(t)

	want := models.Coverage{
		Total:        120,
		WithPrice:    80,
		WithIncludes: 75,
		Scraped:      90,
	}
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/admin/coverage",
		func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"), "should send bearer token")
			return httpmock.NewJsonResponse(http.StatusOK, want)
		})

	coverage, err := client.Coverage(context.TODO())

	require.NoError(t, err, "should get coverage without errors")
	assert.Equal(t, want, coverage, "unexpected coverage")
}

func TestUnitCoverageUnauthorized(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/admin/coverage",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"success":false,"error":"invalid bearer token"}`))

	_, err := client.Coverage(context.TODO())

	require.ErrorIs(t, err, syncclient.ErrRequestFailed, "should return request failed error")
}
