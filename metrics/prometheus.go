package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink using the Prometheus client library.
// All methods are non-blocking; registration errors are logged, never
// propagated, so a collector collision cannot take the server down.
type PrometheusSink struct {
	visitsTotal        prometheus.Counter
	visitErrorsTotal   prometheus.Counter
	statsQueriesTotal  *prometheus.CounterVec
	statsQueryDuration prometheus.Histogram
	cardsServedTotal   prometheus.Counter
}

// NewPrometheusSink creates a Prometheus metrics sink registered on reg.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{
		visitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flashdeck_visits_recorded_total",
			Help: "Total number of page visits ingested.",
		}),
		visitErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flashdeck_visit_errors_total",
			Help: "Total number of visit ingestion failures.",
		}),
		statsQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flashdeck_stats_queries_total",
			Help: "Total number of stats queries served, by outcome.",
		}, []string{"outcome"}),
		statsQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "flashdeck_stats_query_duration_seconds",
			Help:    "Duration of stats queries in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		cardsServedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flashdeck_cards_served_total",
			Help: "Total number of flashcards returned by the card API.",
		}),
	}

	s.register(reg, s.visitsTotal, "flashdeck_visits_recorded_total")
	s.register(reg, s.visitErrorsTotal, "flashdeck_visit_errors_total")
	s.register(reg, s.statsQueriesTotal, "flashdeck_stats_queries_total")
	s.register(reg, s.statsQueryDuration, "flashdeck_stats_query_duration_seconds")
	s.register(reg, s.cardsServedTotal, "flashdeck_cards_served_total")
	return s
}

func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if reg == nil {
		return
	}
	if err := reg.Register(c); err != nil {
		log.Printf("metrics: failed to register %s: %v", name, err)
	}
}

func (s *PrometheusSink) VisitRecorded() {
	s.visitsTotal.Inc()
}

func (s *PrometheusSink) VisitRejected() {
	s.visitErrorsTotal.Inc()
}

func (s *PrometheusSink) StatsQueryCompleted(duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	s.statsQueriesTotal.WithLabelValues(outcome).Inc()
	s.statsQueryDuration.Observe(duration.Seconds())
}

func (s *PrometheusSink) CardsServed(count int) {
	s.cardsServedTotal.Add(float64(count))
}
