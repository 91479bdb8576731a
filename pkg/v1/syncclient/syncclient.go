// Package syncclient is a client of the catalog sync admin API.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

// Client calls the catalog sync admin endpoints with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns new Client for provided base URL and bearer token.
func New(baseURL, token string, ops ...func(*Client)) *Client {
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}

	for _, op := range ops {
		op(client)
	}

	return client
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

type runBatchRequest struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

type runBatchResponse struct {
	Success   bool                  `json:"success"`
	Processed int                   `json:"processed"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Results   []models.BatchOutcome `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RunBatch triggers one synchronous batch pass and returns its report.
func (c *Client) RunBatch(ctx context.Context, limit, offset int64) (*models.BatchReport, error) {
	payload, err := json.Marshal(runBatchRequest{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("can't marshal batch request: %w", err)
	}

	var body runBatchResponse
	if err := c.do(ctx, http.MethodPost, "/admin/scrape-batch", payload, &body); err != nil {
		return nil, fmt.Errorf("can't run batch: %w", err)
	}

	return &models.BatchReport{
		Processed: body.Processed,
		Succeeded: body.Succeeded,
		Failed:    body.Failed,
		Outcomes:  body.Results,
	}, nil
}

// Coverage fetches aggregate catalog coverage.
func (c *Client) Coverage(ctx context.Context) (models.Coverage, error) {
	var coverage models.Coverage
	if err := c.do(ctx, http.MethodGet, "/admin/coverage", nil, &coverage); err != nil {
		return models.Coverage{}, fmt.Errorf("can't get coverage: %w", err)
	}

	return coverage, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, target any) error {
	var body *bytes.Buffer
	if payload != nil {
		body = bytes.NewBuffer(payload)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("can't create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("can't send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, errBody.Error)
		}
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("can't decode response: %w", err)
	}

	return nil
}
