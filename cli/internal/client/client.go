// ABOUTME: HTTP client for the cementing hydraulics API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexandroood/cementing-hydraulics/models"
)

// Client is the API client for the cementing hydraulics backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status      string `json:"status"`
	Catalog     string `json:"catalog"`
	PresetCount int    `json:"preset_count"`
}

// PresetsResponse represents the /api/v1/presets endpoint response
type PresetsResponse struct {
	Presets []models.SlurryPreset `json:"presets"`
	Source  string                `json:"source"`
}

// Health calls the /api/v1/health endpoint
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.get(ctx, "/api/v1/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Presets calls the /api/v1/presets endpoint
func (c *Client) Presets(ctx context.Context) (*PresetsResponse, error) {
	var presets PresetsResponse
	if err := c.get(ctx, "/api/v1/presets", &presets); err != nil {
		return nil, err
	}
	return &presets, nil
}

// GetPreset calls the /api/v1/presets/{name} endpoint
func (c *Client) GetPreset(ctx context.Context, name string) (*models.SlurryPreset, error) {
	var preset models.SlurryPreset
	if err := c.get(ctx, "/api/v1/presets/"+url.PathEscape(name), &preset); err != nil {
		return nil, err
	}
	return &preset, nil
}

// EvaluateJob calls POST /api/v1/job
func (c *Client) EvaluateJob(ctx context.Context, input *models.JobRequest) (*models.JobResponse, error) {
	var job models.JobResponse
	if err := c.post(ctx, "/api/v1/job", input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CompareScenario calls POST /api/v1/scenario/compare
func (c *Client) CompareScenario(ctx context.Context, input *models.ScenarioInput) (*models.ScenarioComparison, error) {
	var comparison models.ScenarioComparison
	if err := c.post(ctx, "/api/v1/scenario/compare", input, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(ctx, req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("backend error: %s", errResp.Error)
}
