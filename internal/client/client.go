package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HubClient defines the interface for reading pull-count metrics from a
// Docker Hub compatible registry API.
type HubClient interface {
	FetchPullCount(ctx context.Context, namespace, repository string) (int64, error)
	BaseURL() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// DefaultClient implements HubClient using the standard net/http package.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig
}

// defaultHubURL is the public Docker Hub v2 API.
const defaultHubURL = "https://hub.docker.com"

// NewDefaultClient constructs a DefaultClient from the given config.
// An empty BaseURL defaults to the public Docker Hub; a zero RequestTimeout
// defaults to 10s.
func NewDefaultClient(cfg ClientConfig) *DefaultClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultHubURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		config: cfg,
	}
}

// BaseURL returns the configured registry API base URL.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// FetchPullCount fetches the cumulative pull count for namespace/repository.
// A response body without a pull_count field yields 0. A non-2xx status is an
// error for that repository; callers isolate it so one failure does not abort
// a batch.
func (c *DefaultClient) FetchPullCount(ctx context.Context, namespace, repository string) (int64, error) {
	path := fmt.Sprintf("/v2/repositories/%s/%s/", url.PathEscape(namespace), url.PathEscape(repository))

	body, err := c.doGet(ctx, path)
	if err != nil {
		return 0, err
	}

	var repo RepositoryInfo
	if err := json.Unmarshal(body, &repo); err != nil {
		return 0, fmt.Errorf("decode repository response: %w", err)
	}
	return repo.PullCount, nil
}

// doGet performs a GET request to the given path (relative to BaseURL).
// It sets Accept: application/json and returns the response body bytes,
// or an error on non-2xx status.
func (c *DefaultClient) doGet(ctx context.Context, path string) ([]byte, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	const maxResponseBytes = 1 * 1024 * 1024 // 1 MB — repository metadata is tiny
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
