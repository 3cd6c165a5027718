// Package metrics provides operational instrumentation sinks.
package metrics

import "time"

// Sink records operational metrics. All methods are fire-and-forget:
// implementations MUST NOT block or propagate errors. If the metrics backend
// is unavailable, implementations log a warning and continue.
type Sink interface {
	// Analytics endpoint metrics
	VisitRecorded()
	VisitRejected()
	StatsQueryCompleted(duration time.Duration, err error)

	// Card API metrics
	CardsServed(count int)
}

// Outcome labels for stats query metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
