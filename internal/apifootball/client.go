package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/httputil"
	"github.com/squadpick/backend/pkg/logger"
)

// Client handles communication with the API-Sports v3 football API.
// All upstream football API calls go through this client.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	apiKey     string
	host       string
}

// NewClient creates a new API-Sports football client.
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(cfg.APIFootball.BaseURL, "/"),
		apiKey:     cfg.APIFootball.APIKey,
		host:       cfg.APIFootball.Host,
	}
}

// get performs an authenticated GET against an API endpoint and decodes
// the common response envelope.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*envelope, error) {
	fullURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response envelope failed: %w", err)
	}

	if msgs := env.apiErrors(); len(msgs) > 0 {
		return nil, fmt.Errorf("upstream error: %s", strings.Join(msgs, "; "))
	}

	return &env, nil
}
