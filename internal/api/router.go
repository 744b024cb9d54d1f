package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricestats/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig tunes the middleware chain.
//
// RequestTimeout bounds the request context and must exceed the worst case of
// the upstream retry budget. RatePerSecond and Burst configure the per-IP
// limiter; a zero RatePerSecond disables it.
type RouterConfig struct {
	RequestTimeout time.Duration
	RatePerSecond  float64
	Burst          int
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, Metrics, RateLimiter).
//   - Bounds every request context by cfg.RequestTimeout.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures the statistics routes (/covariance, /volatility).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Metrics(),
	)
	if cfg.RatePerSecond > 0 {
		router.Use(middleware.RateLimiter(cfg.RatePerSecond, cfg.Burst))
	}

	// ─── Timeout ──────────────────────────────────
	if cfg.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	// ─── Swagger / Metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ─── Statistics ───────────────────────────────
	router.GET("/covariance", handler.GetCovariance)
	router.GET("/volatility", handler.GetVolatility)

	return router
}
