package decision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config controls how the client reaches the calculation backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client calls the 4th-down calculation backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a decision client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// Calculate posts the situation and returns the backend's breakdown.
func (c *Client) Calculate(ctx context.Context, request CalculationRequest) (*CalculationResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("decision: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/calculate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decision: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("decision: calculate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("decision: backend status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result CalculationResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return nil, fmt.Errorf("decision: decode response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("decision: backend error: %s", result.Error)
	}
	return &result, nil
}
