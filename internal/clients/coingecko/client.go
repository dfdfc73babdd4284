// Package coingecko is a minimal client for the CoinGecko simple price API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.coingecko.com"
	requestTimeout = 10 * time.Second
)

// ErrRateLimited is returned when the upstream responds with 429.
var ErrRateLimited = errors.New("coingecko: rate limited")

// Quote holds the USD price and 24-hour change for one asset.
type Quote struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
}

// Client is a CoinGecko API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the public CoinGecko API.
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom base URL,
// mainly for pointing tests at an httptest server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SimplePrice fetches USD prices and 24h changes for the given coin IDs in one call.
func (c *Client) SimplePrice(ctx context.Context, ids []string) (map[string]Quote, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")

	reqURL := c.baseURL + "/api/v3/simple/price?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("coingecko: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var quotes map[string]Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("coingecko: decode response: %w", err)
	}
	return quotes, nil
}
