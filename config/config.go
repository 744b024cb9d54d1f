package config

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// DefaultQuoteHeaders is sent with every upstream request unless QUOTE_HEADERS
// overrides it.
const DefaultQuoteHeaders = `{"accept":"*/*","accept-language":"en-US,en;q=0.9","user-agent":"Mozilla/5.0"}`

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT=120s
//	QUOTE_BASE_URL=https://query1.finance.yahoo.com/v8/finance/chart
//	QUOTE_HEADERS={"user-agent":"Mozilla/5.0","cookie":"A3=..."}
//	QUOTE_MAX_ATTEMPTS=15
//	QUOTE_ATTEMPT_TIMEOUT=5s
//	QUOTE_RETRY_DELAY=1.5s
//	LOOKBACK_DAYS=365
//	RATE_LIMIT_RPS=1
//	RATE_LIMIT_BURST=60
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Quote     QuoteConfig     // Upstream quote provider settings
	RateLimit RateLimitConfig // Per-client request limiting
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Deadline applied to every API request
}

// QuoteConfig configures the upstream executor and series fetcher.
//
// Fields:
//   - BaseURL: chart endpoint; the symbol is appended as a path segment.
//   - Headers: sent with every upstream request.
//   - MaxAttempts: attempts per logical call.
//   - AttemptTimeout: per-attempt deadline.
//   - RetryDelay: pause after a non-success HTTP status.
//   - LookbackDays: size of the fetched window.
type QuoteConfig struct {
	BaseURL        string
	Headers        map[string]string
	MaxAttempts    int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
	LookbackDays   int
}

// RateLimitConfig sets the per-IP token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", 120*time.Second)

	viper.SetDefault("QUOTE_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("QUOTE_HEADERS", DefaultQuoteHeaders)
	viper.SetDefault("QUOTE_MAX_ATTEMPTS", 15)
	viper.SetDefault("QUOTE_ATTEMPT_TIMEOUT", 5*time.Second)
	viper.SetDefault("QUOTE_RETRY_DELAY", 1500*time.Millisecond)
	viper.SetDefault("LOOKBACK_DAYS", 365)

	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 60)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	var invalid []string
	headers, err := parseHeaders(viper.GetString("QUOTE_HEADERS"))
	if err != nil {
		invalid = append(invalid, "QUOTE_HEADERS")
	}

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Quote: QuoteConfig{
			BaseURL:        viper.GetString("QUOTE_BASE_URL"),
			Headers:        headers,
			MaxAttempts:    viper.GetInt("QUOTE_MAX_ATTEMPTS"),
			AttemptTimeout: viper.GetDuration("QUOTE_ATTEMPT_TIMEOUT"),
			RetryDelay:     viper.GetDuration("QUOTE_RETRY_DELAY"),
			LookbackDays:   viper.GetInt("LOOKBACK_DAYS"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	validateConfig(invalid...)
}

// parseHeaders decodes a JSON object of header name to value.
func parseHeaders(raw string) (map[string]string, error) {
	if raw == "" {
		return map[string]string{}, nil
	}
	var h map[string]string
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, fmt.Errorf("parse QUOTE_HEADERS: %w", err)
	}
	return h, nil
}

// problems lists the keys of cfg that are missing or out of range.
func problems(cfg Config) []string {
	var out []string

	if cfg.Server.Port == "" {
		out = append(out, "SERVER_PORT")
	}
	if cfg.Server.RequestTimeout <= 0 {
		out = append(out, "SERVER_REQUEST_TIMEOUT")
	}
	if cfg.Quote.BaseURL == "" {
		out = append(out, "QUOTE_BASE_URL")
	}
	if cfg.Quote.MaxAttempts < 1 {
		out = append(out, "QUOTE_MAX_ATTEMPTS")
	}
	if cfg.Quote.AttemptTimeout <= 0 {
		out = append(out, "QUOTE_ATTEMPT_TIMEOUT")
	}
	if cfg.Quote.RetryDelay < 0 {
		out = append(out, "QUOTE_RETRY_DELAY")
	}
	if cfg.Quote.LookbackDays < 1 {
		out = append(out, "LOOKBACK_DAYS")
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst < 1 {
		out = append(out, "RATE_LIMIT_BURST")
	}
	return out
}

// validateConfig terminates the application when AppConfig has missing or
// invalid fields. extra carries keys that already failed to parse.
func validateConfig(extra ...string) {
	bad := append(extra, problems(AppConfig)...)
	if len(bad) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", bad)
	}
}
