// Package oeis queries the On-Line Encyclopedia of Integer Sequences.
package oeis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samcharles93/intseq/internal/logger"
	"github.com/samcharles93/intseq/internal/sequence"
	"github.com/samcharles93/intseq/internal/version"
)

// DefaultBaseURL is the public OEIS endpoint.
const DefaultBaseURL = "https://oeis.org"

// maxBodySize bounds the search response read into memory.
const maxBodySize = 8 << 20

// Client implements sequence.Database against the OEIS search API.
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
	Log       logger.Logger
}

var _ sequence.Database = (*Client)(nil)

// NewClient returns a client for baseURL. An empty baseURL means
// DefaultBaseURL; a zero timeout leaves requests bounded only by their
// context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: version.UserAgent(),
		HTTP:      &http.Client{Timeout: timeout},
	}
}

// Query returns the search query for key: its terms joined by commas.
func Query(key []int64) string {
	parts := make([]string, len(key))
	for i, x := range key {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return strings.Join(parts, ",")
}

// SearchURL returns the JSON search URL for key.
func (c *Client) SearchURL(key []int64) string {
	v := url.Values{}
	v.Set("q", Query(key))
	v.Set("fmt", "json")
	return c.BaseURL + "/search?" + v.Encode()
}

// Lookup issues one search request under ctx and returns the record the
// service ranked first, or nothing when no record matched.
func (c *Client) Lookup(ctx context.Context, key []int64) ([]sequence.Candidate, error) {
	log := c.Log
	if log == nil {
		log = logger.FromContext(ctx)
	}
	u := c.SearchURL(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("oeis: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oeis: query %q: %w", Query(key), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("oeis: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ProtocolError{Status: resp.StatusCode, Detail: snippet(body)}
	}

	candidates, err := decodeCandidates(body)
	if err != nil {
		return nil, err
	}
	log.Debug("oeis lookup",
		"query", Query(key),
		"candidates", len(candidates),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return candidates, nil
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
