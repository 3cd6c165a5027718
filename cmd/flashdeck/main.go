// Command flashdeck runs the flashcard server with its visitor-analytics
// endpoint. All configuration comes from environment variables, optionally
// loaded from a .env file.
package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/flashdeck"
)

func main() {
	_ = godotenv.Load()

	cfg := flashdeck.SiteConfig{
		Name:                  os.Getenv("SITE_NAME"),
		Addr:                  os.Getenv("ADDR"),
		DatabasePath:          os.Getenv("DATABASE_PATH"),
		AnalyticsEnabled:      envBool("ANALYTICS_ENABLED", true),
		AnalyticsDatabasePath: os.Getenv("ANALYTICS_DATABASE_PATH"),
		AnalyticsPath:         os.Getenv("ANALYTICS_PATH"),
		MetricsEnabled:        envBool("METRICS_ENABLED", false),
		MetricsPath:           os.Getenv("METRICS_PATH"),
		CardCacheTTL:          envDuration("CARD_CACHE_TTL", 0),
	}

	app := flashdeck.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
