package flashdeck

import "time"

// SiteConfig holds all configuration for a flashdeck deployment.
type SiteConfig struct {
	Name string // Site name (default "Flashdeck")
	Addr string // Listen address (default ":3000")

	DatabasePath string // Cards SQLite path (default "data/cards.db")

	AnalyticsEnabled      bool   // Enable the visitor-analytics endpoint
	AnalyticsDatabasePath string // Visits SQLite path (default "data/analytics.db")
	AnalyticsPath         string // Endpoint mount path (default "/api/analytics")

	MetricsEnabled bool   // Expose Prometheus metrics
	MetricsPath    string // Metrics path (default "/metrics")

	CardCacheTTL time.Duration // Card cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Flashdeck"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/cards.db"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsPath == "" {
		c.AnalyticsPath = "/api/analytics"
	}
	if c.MetricsPath == "" {
		c.MetricsPath = "/metrics"
	}
	if c.CardCacheTTL == 0 {
		c.CardCacheTTL = 5 * time.Minute
	}
}
