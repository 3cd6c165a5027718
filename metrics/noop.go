package metrics

import "time"

// NoopSink discards all metrics. Used when metrics are disabled.
type NoopSink struct{}

// Noop returns a Sink that discards everything.
func Noop() Sink {
	return NoopSink{}
}

func (NoopSink) VisitRecorded() {}

func (NoopSink) VisitRejected() {}

func (NoopSink) StatsQueryCompleted(_ time.Duration, _ error) {}

func (NoopSink) CardsServed(_ int) {}
