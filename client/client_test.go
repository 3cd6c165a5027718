package client

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flashdeck/analytics"
)

func TestTrackVisitSendsPayload(t *testing.T) {
	var got trackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticSessionProvider("fixed-session"),
		WithUserAgent("flashdeck-test/1.0"),
		WithReferrer("https://example.com"))
	c.TrackVisit(context.Background(), "/deck")

	if got.SessionID != "fixed-session" {
		t.Errorf("sessionId = %q, want %q", got.SessionID, "fixed-session")
	}
	if got.PagePath != "/deck" {
		t.Errorf("pagePath = %q, want %q", got.PagePath, "/deck")
	}
	if got.UserAgent != "flashdeck-test/1.0" {
		t.Errorf("userAgent = %q, want %q", got.UserAgent, "flashdeck-test/1.0")
	}
	if got.Referrer != "https://example.com" {
		t.Errorf("referrer = %q, want %q", got.Referrer, "https://example.com")
	}
}

func TestTrackVisitDefaultsPagePath(t *testing.T) {
	var got trackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticSessionProvider("s"))
	c.TrackVisit(context.Background(), "")

	if got.PagePath != "/" {
		t.Errorf("pagePath = %q, want %q", got.PagePath, "/")
	}
}

func TestTrackVisitSwallowsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticSessionProvider("s"), WithLogger(log.New(io.Discard, "", 0)))
	// Must not panic or surface anything on server errors...
	c.TrackVisit(context.Background(), "/")

	// ...nor on dead endpoints.
	srv.Close()
	c.TrackVisit(context.Background(), "/")
}

func TestFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(analytics.StatsSummary{
			TotalVisitors:  5,
			RecentVisitors: 2,
			DailyStats:     []analytics.DailyStat{{Date: "2025-03-14", Visitors: 5}},
			HourlyStats:    make([]analytics.HourlyStat, 24),
		})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticSessionProvider("s"))
	summary, err := c.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("FetchStats failed: %v", err)
	}
	if summary.TotalVisitors != 5 || summary.RecentVisitors != 2 {
		t.Errorf("counts = %d/%d, want 5/2", summary.TotalVisitors, summary.RecentVisitors)
	}
	if len(summary.HourlyStats) != 24 {
		t.Errorf("hourlyStats has %d entries, want 24", len(summary.HourlyStats))
	}
}

func TestFetchStatsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database gone"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, StaticSessionProvider("s"))
	if _, err := c.FetchStats(context.Background()); err == nil {
		t.Fatal("expected error on 500 response, got nil")
	}
}

func TestPollerDeliversAndStops(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(analytics.StatsSummary{TotalVisitors: int(calls.Load())})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticSessionProvider("s"))

	var results atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p := NewPoller(c, 20*time.Millisecond, func(summary *analytics.StatsSummary, err error) {
			if err != nil {
				t.Errorf("unexpected poll error: %v", err)
				return
			}
			results.Add(1)
		})
		p.Run(ctx)
	}()

	// The first fetch is immediate, then one per tick.
	time.Sleep(110 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	if n := results.Load(); n < 2 {
		t.Errorf("received %d results, want at least 2", n)
	}
}
