package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/timeutil"
)

// Config controls how the scoreboard client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches per-sport scoreboards and maps them to domain records.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchSport retrieves one sport's scoreboard for the given date
// (YYYY-MM-DD; empty means today) and returns the parsed records.
// Events that cannot be resolved into two sides are dropped.
func (c *Client) FetchSport(ctx context.Context, sport domain.Sport, date string) ([]domain.GameRecord, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("espn: unsupported sport %q", sport)
	}

	req, err := c.buildRequest(ctx, path, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("espn: %s scoreboard fetch: %w", sport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: %s scoreboard unexpected status %d: %s", sport, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("espn: %s scoreboard decode: %w", sport, err)
	}

	records := make([]domain.GameRecord, 0, len(payload.Events))
	for i := range payload.Events {
		if record := parseEvent(&payload.Events[i], sport); record != nil {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (c *Client) buildRequest(ctx context.Context, path, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path+"/scoreboard", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", c.resolveDateParam(date))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// resolveDateParam converts a canonical date to the compact YYYYMMDD
// form the API expects, defaulting to today.
func (c *Client) resolveDateParam(date string) string {
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			return timeutil.FormatDateParam(parsed)
		}
	}
	return timeutil.FormatDateParam(c.now().UTC())
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
