// Package flashdeck is a flashcard learning service with built-in visitor
// analytics, built with Go, Echo, and SQLite.
//
// It serves the card deck as a JSON API and hosts the visitor-analytics
// endpoint the browser client reports page views to. The analytics side lives
// in the analytics subpackage; the client subpackage holds the Go tracking
// and polling client.
package flashdeck

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flashdeck/analytics"
	"github.com/flashdeck/metrics"
)

// App is the central flashdeck application. It wires together the stores,
// cache, handlers, middleware, and metrics.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *CardCache

	analyticsStore *analytics.Store
	sink           metrics.Sink
	registry       *prometheus.Registry
}

// New creates a new flashdeck App with the given configuration.
func New(cfg SiteConfig) *App {
	cfg.setDefaults()
	return &App{
		Config: cfg,
		Echo:   echo.New(),
		sink:   metrics.Noop(),
	}
}

// Start initializes the stores, cache, middleware, and routes, seeds the
// starter deck when the card store is empty, and runs the server.
func (a *App) Start() error {
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("flashdeck: init store: %w", err)
	}
	a.Store = store

	if err := store.SeedIfEmpty(StarterDeck()); err != nil {
		return fmt.Errorf("flashdeck: seed cards: %w", err)
	}

	a.Cache = NewCardCache(store, a.Config.CardCacheTTL)

	if a.Config.MetricsEnabled {
		a.registry = prometheus.NewRegistry()
		a.sink = metrics.NewPrometheusSink(a.registry)
	}

	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("flashdeck: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
	}

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/health", a.handleHealth)
	e.GET("/api/cards", a.handleCards)
	e.GET("/api/categories", a.handleCategories)

	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		analyticsHandler := analytics.NewHandler(a.analyticsStore, a.sink)
		analyticsHandler.RegisterRoutes(e, a.Config.AnalyticsPath)
	}

	if a.Config.MetricsEnabled && a.registry != nil {
		e.GET(a.Config.MetricsPath, echo.WrapHandler(
			promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		a.Store.Close()
	}
	if a.analyticsStore != nil {
		a.analyticsStore.Close()
	}
	return nil
}
