package main

//
//  @title           pricestats API
//  @version         1.0
//  @description     Covariance, correlation and realized volatility of crypto and equity index closes.
//  @termsOfService  https://github.com/guttosm/pricestats
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/pricestats
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        statistics
//  @tag.description Covariance and volatility over the trailing year
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/guttosm/pricestats/config"
	_ "github.com/guttosm/pricestats/docs" // swagger docs
	"github.com/guttosm/pricestats/internal/app"
	"github.com/guttosm/pricestats/internal/domain/dto"
	"github.com/guttosm/pricestats/internal/domain/models"
	"github.com/guttosm/pricestats/internal/logger"
	"github.com/guttosm/pricestats/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// WriteTimeout is derived from the request timeout so that a request running
// the full upstream retry budget can still be answered.
func startServer(router http.Handler, port string, requestTimeout time.Duration) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// computeRequest is a one-shot computation selected on the command line.
type computeRequest struct {
	token1, token2 string
	volatility     string
}

// runCompute resolves the requested instruments, runs one computation and
// writes the result to w as indented JSON.
func runCompute(ctx context.Context, svc service.AnalyticsService, req computeRequest, w io.Writer) error {
	var out any

	if req.volatility != "" {
		token, ok := models.ParseInstrument(req.volatility)
		if !ok {
			return fmt.Errorf("invalid token value: %s", req.volatility)
		}
		res, err := svc.Volatility(ctx, token)
		if err != nil {
			return err
		}
		out = dto.NewVolatilityResponse(res)
	} else {
		token1, ok := models.ParseInstrument(req.token1)
		if !ok {
			return fmt.Errorf("invalid token_1 value: %s", req.token1)
		}
		token2, ok := models.ParseInstrument(req.token2)
		if !ok {
			return fmt.Errorf("invalid token_2 value: %s", req.token2)
		}
		res, err := svc.Covariance(ctx, token1, token2)
		if err != nil {
			return err
		}
		out = dto.NewCovarianceResponse(res)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// main is the entry point of the pricestats application.
//
// Modes (selected via --mode flag):
//   - compute: Runs one covariance (or, with --volatility, one volatility) and prints it.
//   - api:     Starts the REST API.
//
// Flags:
//   - --mode:       Execution mode ("compute" or "api"). Default: "api".
//   - --token1:     First instrument for compute mode. Default: "btc".
//   - --token2:     Second instrument for compute mode. Default: "snp".
//   - --volatility: Instrument whose volatility to compute instead of a covariance.
//   - --port:       Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: compute or api")
	token1 := flag.String("token1", "btc", "First instrument for compute mode")
	token2 := flag.String("token2", "snp", "Second instrument for compute mode")
	volatility := flag.String("volatility", "", "Compute the volatility of this instrument instead of a covariance")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "compute":
		svc, cleanup := app.NewAnalytics(config.AppConfig, prometheus.NewRegistry())
		defer cleanup()

		req := computeRequest{token1: *token1, token2: *token2, volatility: *volatility}
		if err := runCompute(ctx, svc, req, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("computation failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port, config.AppConfig.Server.RequestTimeout)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
