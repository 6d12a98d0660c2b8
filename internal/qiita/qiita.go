// Package qiita is a minimal client for the Qiita v2 items API.
package qiita

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deusflow/trenddigest/internal/ratelimit"
)

const userAgent = "trenddigest/1.0 (+https://qiita.com/popular-items)"

// Client fetches per-article metadata.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *ratelimit.Limiter
}

// NewClient creates a client. A nil httpClient gets a 15s timeout client;
// a nil limiter means no throttling.
func NewClient(baseURL, token string, httpClient *http.Client, limiter *ratelimit.Limiter) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if limiter == nil {
		limiter = ratelimit.New(0, 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		limiter: limiter,
	}
}

type itemResponse struct {
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

// ItemTags returns the tag names of one article, in API order.
func (c *Client) ItemTags(ctx context.Context, itemID string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/items/" + url.PathEscape(itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("qiita API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var body itemResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("error decoding item %s: %w", itemID, err)
	}

	names := make([]string, 0, len(body.Tags))
	for _, t := range body.Tags {
		names = append(names, t.Name)
	}
	return names, nil
}
