package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/pricestats/internal/domain/models"
	"github.com/guttosm/pricestats/internal/logger"
)

const (
	DefaultBaseURL      = "https://query1.finance.yahoo.com/v8/finance/chart"
	DefaultLookbackDays = 365
)

// Requester executes an upstream call and returns its JSON document.
type Requester interface {
	Execute(ctx context.Context, opts *RequestOptions) (json.RawMessage, error)
}

// Fetcher loads daily closing prices for an instrument.
type Fetcher struct {
	req          Requester
	baseURL      string
	lookbackDays int
	now          func() time.Time
}

// NewFetcher returns a Fetcher reading from baseURL. Zero values fall back to
// DefaultBaseURL and DefaultLookbackDays.
func NewFetcher(req Requester, baseURL string, lookbackDays int) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Fetcher{
		req:          req,
		baseURL:      strings.TrimRight(baseURL, "/"),
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// FetchYearlySeries returns the daily closes of inst over the trailing
// lookback window ending now.
func (f *Fetcher) FetchYearlySeries(ctx context.Context, inst models.Instrument) (models.Series, error) {
	end := f.now()
	start := end.Add(-time.Duration(f.lookbackDays) * 24 * time.Hour)
	u := f.buildURL(inst, start, end)

	begin := time.Now()
	raw, err := f.req.Execute(ctx, &RequestOptions{Method: http.MethodGet, URL: u})
	if err != nil {
		return models.Series{}, fmt.Errorf("fetch %s: %w", inst, err)
	}

	s, err := parseChart(inst, raw)
	if err != nil {
		return models.Series{}, err
	}
	logger.L().Debug().
		Str("token", inst.Name()).
		Int("points", s.Len()).
		Dur("elapsed", time.Since(begin)).
		Msg("series fetched")
	return s, nil
}

func (f *Fetcher) buildURL(inst models.Instrument, start, end time.Time) string {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", "1d")
	q.Set("includePrePost", "true")
	q.Set("events", "div|split|earn")
	q.Set("lang", "en-US")
	q.Set("region", "US")
	return f.baseURL + "/" + url.PathEscape(inst.Symbol()) + "?" + q.Encode()
}
