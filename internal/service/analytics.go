package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/pricestats/internal/domain/models"
	"github.com/guttosm/pricestats/internal/logger"
	"github.com/guttosm/pricestats/internal/stats"
)

// SeriesFetcher loads the lookback series of one instrument.
type SeriesFetcher interface {
	FetchYearlySeries(ctx context.Context, inst models.Instrument) (models.Series, error)
}

// ComputationRecorder observes the outcome of each computation.
type ComputationRecorder interface {
	RecordComputation(kind string, err error)
}

// AnalyticsService computes descriptive statistics over fetched series.
// Every call fetches fresh data; nothing is shared between calls.
type AnalyticsService interface {
	Covariance(ctx context.Context, token1, token2 models.Instrument) (*models.CovarianceResult, error)
	Volatility(ctx context.Context, token models.Instrument) (*models.VolatilityResult, error)
}

type analyticsService struct {
	fetcher SeriesFetcher
	rec     ComputationRecorder
}

type noopComputationRecorder struct{}

func (noopComputationRecorder) RecordComputation(string, error) {}

// NewAnalyticsService wires the service. rec may be nil.
func NewAnalyticsService(fetcher SeriesFetcher, rec ComputationRecorder) AnalyticsService {
	if rec == nil {
		rec = noopComputationRecorder{}
	}
	return &analyticsService{fetcher: fetcher, rec: rec}
}

// Covariance fetches both series concurrently, aligns them on their common
// days and returns the population covariance and Pearson correlation.
func (s *analyticsService) Covariance(ctx context.Context, token1, token2 models.Instrument) (*models.CovarianceResult, error) {
	res, err := s.covariance(ctx, token1, token2)
	s.rec.RecordComputation("covariance", err)
	return res, err
}

func (s *analyticsService) covariance(ctx context.Context, token1, token2 models.Instrument) (*models.CovarianceResult, error) {
	var a, b models.Series

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.fetcher.FetchYearlySeries(gctx, token1)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = s.fetcher.FetchYearlySeries(gctx, token2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pair, err := stats.Align(a, b)
	if err != nil {
		return nil, err
	}
	logger.L().Debug().
		Str("token_1", token1.Name()).
		Str("token_2", token2.Name()).
		Int("common_dates", pair.Len()).
		Int("dropped_1", pair.DroppedA).
		Int("dropped_2", pair.DroppedB).
		Msg("series aligned")

	cov, corr, err := stats.CovarianceAndCorrelation(pair)
	if err != nil {
		return nil, fmt.Errorf("covariance %s/%s: %w", token1, token2, err)
	}

	return &models.CovarianceResult{
		Token1:                 token1,
		Token2:                 token2,
		Covariance:             cov,
		CorrelationCoefficient: corr,
	}, nil
}

// Volatility returns the annualized realized volatility of token.
func (s *analyticsService) Volatility(ctx context.Context, token models.Instrument) (*models.VolatilityResult, error) {
	res, err := s.volatility(ctx, token)
	s.rec.RecordComputation("volatility", err)
	return res, err
}

func (s *analyticsService) volatility(ctx context.Context, token models.Instrument) (*models.VolatilityResult, error) {
	series, err := s.fetcher.FetchYearlySeries(ctx, token)
	if err != nil {
		return nil, err
	}
	v, err := stats.RealizedVolatility(series)
	if err != nil {
		return nil, fmt.Errorf("volatility %s: %w", token, err)
	}
	return &models.VolatilityResult{Token: token, Volatility: v}, nil
}
