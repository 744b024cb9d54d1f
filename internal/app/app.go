package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/guttosm/pricestats/config"
	"github.com/guttosm/pricestats/internal/api"
	"github.com/guttosm/pricestats/internal/metrics"
	"github.com/guttosm/pricestats/internal/quote"
	"github.com/guttosm/pricestats/internal/service"
)

// registerer is where upstream metrics are registered; tests swap it for a
// private registry.
var registerer prometheus.Registerer = prometheus.DefaultRegisterer

// NewAnalytics builds the analytics service from cfg: executor, fetcher and
// the Prometheus recorder shared by both. The returned cleanup releases idle
// upstream connections.
func NewAnalytics(cfg config.Config, reg prometheus.Registerer) (service.AnalyticsService, func()) {
	rec := metrics.New(reg)
	client := &http.Client{Timeout: cfg.Quote.AttemptTimeout}

	exec := quote.NewExecutor(
		quote.WithHTTPClient(client),
		quote.WithHeaders(cfg.Quote.Headers),
		quote.WithMaxAttempts(cfg.Quote.MaxAttempts),
		quote.WithAttemptTimeout(cfg.Quote.AttemptTimeout),
		quote.WithRetryDelay(cfg.Quote.RetryDelay),
		quote.WithRecorder(rec),
	)
	fetcher := quote.NewFetcher(exec, cfg.Quote.BaseURL, cfg.Quote.LookbackDays)

	return service.NewAnalyticsService(fetcher, rec), client.CloseIdleConnections
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream executor, series fetcher and analytics service.
//   - Creates the HTTP handler layer and the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that releases idle upstream connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	ready := upstreamReady(cfg.Quote.BaseURL)
	if err := ready(); err != nil {
		return nil, nil, fmt.Errorf("invalid quote configuration: %w", err)
	}

	svc, cleanup := NewAnalytics(cfg, registerer)
	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterConfig{
		RequestTimeout: cfg.Server.RequestTimeout,
		RatePerSecond:  cfg.RateLimit.RPS,
		Burst:          cfg.RateLimit.Burst,
	})

	api.NewHealthHandler(ready).Register(router)

	return router, cleanup, nil
}

// upstreamReady reports whether baseURL can address the quote provider.
func upstreamReady(baseURL string) func() error {
	return func() error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("parse quote base url: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New("quote base url must be an absolute http(s) url")
		}
		return nil
	}
}
