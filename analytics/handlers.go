package analytics

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flashdeck/metrics"
)

// allowedHeaders mirrors what tracking clients send cross-origin: the
// authorization/apikey pair plus the JSON content type.
const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// Handler serves the visitor-analytics endpoint: one route that ingests
// visits on POST and returns aggregated stats on GET.
type Handler struct {
	store *Store
	sink  metrics.Sink
}

// NewHandler creates an analytics handler. A nil sink disables metrics.
func NewHandler(store *Store, sink metrics.Sink) *Handler {
	if sink == nil {
		sink = metrics.Noop()
	}
	return &Handler{store: store, sink: sink}
}

// TrackRequest is the ingestion payload. CreatedAt is always server-assigned;
// clients cannot influence windowing.
type TrackRequest struct {
	SessionID string `json:"sessionId"`
	PagePath  string `json:"pagePath"`
	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`
}

// RegisterRoutes mounts the endpoint at path on the Echo router.
func (h *Handler) RegisterRoutes(e *echo.Echo, path string) {
	e.Any(path, h.Endpoint)
}

// Endpoint dispatches on method: POST records a visit, GET returns stats,
// OPTIONS answers the CORS preflight with an empty 200. Anything else is a
// 405. Permissive CORS headers go on every response because the browser
// client calls from a different origin.
func (h *Handler) Endpoint(c echo.Context) error {
	res := c.Response().Header()
	res.Set(echo.HeaderAccessControlAllowOrigin, "*")
	res.Set(echo.HeaderAccessControlAllowHeaders, allowedHeaders)

	switch c.Request().Method {
	case http.MethodOptions:
		return c.NoContent(http.StatusOK)
	case http.MethodPost:
		return h.track(c)
	case http.MethodGet:
		return h.stats(c)
	default:
		return c.String(http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// track performs one insert. Beyond defaulting pagePath it validates nothing:
// the endpoint is a pure ingestion sink, not a security boundary, so any
// session id string is accepted verbatim and nothing is deduplicated.
func (h *Handler) track(c echo.Context) error {
	var req TrackRequest
	if err := c.Bind(&req); err != nil {
		h.sink.VisitRejected()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	event := &VisitEvent{
		SessionID: req.SessionID,
		PagePath:  req.PagePath,
		UserAgent: req.UserAgent,
		Referrer:  req.Referrer,
	}
	if err := h.store.InsertVisit(event); err != nil {
		c.Logger().Errorf("track visit: %v", err)
		h.sink.VisitRejected()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.sink.VisitRecorded()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// stats runs one range fetch over the trailing 7-day window and aggregates it.
// A store failure propagates as a 500 with the underlying message; no partial
// or zero-filled summary is ever fabricated.
func (h *Handler) stats(c echo.Context) error {
	start := time.Now()
	now := start.UTC()

	events, err := h.store.VisitsSince(now.Add(-TotalWindow))
	if err != nil {
		c.Logger().Errorf("fetch visits: %v", err)
		h.sink.StatsQueryCompleted(time.Since(start), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	summary := ComputeStats(now, events)
	h.sink.StatsQueryCompleted(time.Since(start), nil)
	return c.JSON(http.StatusOK, summary)
}
