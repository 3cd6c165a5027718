package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/flashdeck/analytics"
)

// Client talks to the visitor-analytics endpoint.
type Client struct {
	endpoint  string
	http      *http.Client
	sessions  SessionProvider
	userAgent string
	referrer  string
	logger    *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUserAgent sets the user agent reported in tracked visits.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithReferrer sets the referrer reported in tracked visits.
func WithReferrer(ref string) Option {
	return func(c *Client) { c.referrer = ref }
}

// WithLogger replaces the default logger used for swallowed tracking errors.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the analytics endpoint at the given URL.
func New(endpoint string, sessions SessionProvider, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		sessions: sessions,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type trackPayload struct {
	SessionID string `json:"sessionId"`
	PagePath  string `json:"pagePath"`
	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`
}

// TrackVisit reports one page view. It is fire-and-forget: every transport or
// server error is logged and swallowed, never surfaced to the caller.
func (c *Client) TrackVisit(ctx context.Context, pagePath string) {
	if pagePath == "" {
		pagePath = "/"
	}
	payload := trackPayload{
		SessionID: c.sessions.SessionID(),
		PagePath:  pagePath,
		UserAgent: c.userAgent,
		Referrer:  c.referrer,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Printf("track visit: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Printf("track visit: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("track visit: %v", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("track visit: endpoint returned %s", resp.Status)
	}
}

// FetchStats returns the current visitor statistics. Any transport failure or
// non-200 response is an error; the caller never receives a partial summary.
func (c *Client) FetchStats(ctx context.Context) (*analytics.StatsSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("fetch stats: %s: %s", resp.Status, apiErr.Error)
		}
		return nil, fmt.Errorf("fetch stats: %s", resp.Status)
	}

	var summary analytics.StatsSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("fetch stats: decode: %w", err)
	}
	return &summary, nil
}
