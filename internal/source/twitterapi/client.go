package twitterapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the twitterapi.io endpoint root.
	DefaultBaseURL = "https://api.twitterapi.io"

	lastTweetsPath = "/twitter/user/last_tweets"

	// maxErrorBody caps how much of an upstream error body is carried in
	// the returned error.
	maxErrorBody = 300
)

// UpstreamError is a non-2xx response from the upstream API. The
// orchestrator retries once on StatusCode 429; everything else is fatal to
// the account being ingested.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("twitterapi HTTP %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited reports whether err is an UpstreamError with HTTP 429.
func IsRateLimited(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusTooManyRequests
}

// ShapeError is a 2xx response whose envelope violates the upstream
// contract: a non-success status or a missing tweets array. Not retried.
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string {
	return "twitterapi: " + e.Msg
}

// Config holds twitterapi.io client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches per-account timeline pages from twitterapi.io.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new twitterapi.io client.
func New(cfg Config, logger *slog.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: base,
		apiKey:  cfg.APIKey,
		logger:  logger.With("source", "twitterapi"),
	}
}

// FetchPage performs a single call to the last_tweets endpoint for one
// account. An empty cursor requests the first page. Rate limiting and 429
// retries are the caller's responsibility.
func (c *Client) FetchPage(ctx context.Context, handle, pageCursor string, includeReplies bool) (*Page, error) {
	q := url.Values{}
	q.Set("userName", handle)
	q.Set("cursor", pageCursor)
	q.Set("includeReplies", strconv.FormatBool(includeReplies))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+lastTweetsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var raw rawResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ShapeError{Msg: fmt.Sprintf("decode response: %v", err)}
	}

	if raw.Status != "success" {
		return nil, &ShapeError{Msg: "upstream status: " + raw.message()}
	}

	tweets := raw.Tweets
	if raw.Data != nil && raw.Data.Tweets != nil {
		tweets = raw.Data.Tweets
	}
	if tweets == nil {
		return nil, &ShapeError{Msg: "missing tweets array: " + raw.message()}
	}

	c.logger.Debug("fetched page",
		"handle", handle,
		"tweets", len(tweets),
		"has_next_page", raw.HasNextPage,
	)

	return &Page{
		Tweets:      tweets,
		HasNextPage: raw.HasNextPage,
		NextCursor:  raw.NextCursor,
	}, nil
}

func (r *rawResponse) message() string {
	if r.Msg != "" {
		return r.Msg
	}
	if r.Message != "" {
		return r.Message
	}
	return "unknown"
}

// createdAtLayouts are the timestamp formats the upstream has been seen to
// use, tried in order.
var createdAtLayouts = []string{
	time.RubyDate, // "Mon Jan 02 15:04:05 -0700 2006", X's legacy format
	time.RFC3339,
}

// ParseCreatedAt parses an upstream createdAt string into a UTC instant.
func ParseCreatedAt(s string) (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable createdAt: %q", s)
}
