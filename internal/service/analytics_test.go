package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pricestats/internal/domain/models"
	"github.com/guttosm/pricestats/internal/stats"
)

type stubFetcher struct {
	mu     sync.Mutex
	series map[models.Instrument]models.Series
	errs   map[models.Instrument]error
	calls  []models.Instrument
}

func (s *stubFetcher) FetchYearlySeries(_ context.Context, inst models.Instrument) (models.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, inst)
	if err := s.errs[inst]; err != nil {
		return models.Series{}, err
	}
	return s.series[inst], nil
}

type stubRecorder struct {
	kinds []string
	errs  []error
}

func (r *stubRecorder) RecordComputation(kind string, err error) {
	r.kinds = append(r.kinds, kind)
	r.errs = append(r.errs, err)
}

// dailySeries returns n consecutive days of prices generated by f.
func dailySeries(inst models.Instrument, n int, f func(i int) float64) models.Series {
	start := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)
	s := models.NewSeries(inst)
	for i := 0; i < n; i++ {
		s.Set(models.DateOf(start.AddDate(0, 0, i)), f(i))
	}
	return s
}

func TestCovariance_EndToEndIdenticalDates(t *testing.T) {
	btc := dailySeries(models.Bitcoin, 260, func(i int) float64 { return 30000 + 500*math.Sin(float64(i)/7) + float64(i)*10 })
	snp := dailySeries(models.Snp500, 260, func(i int) float64 { return 4300 + 40*math.Cos(float64(i)/5) + float64(i) })
	f := &stubFetcher{series: map[models.Instrument]models.Series{models.Bitcoin: btc, models.Snp500: snp}}
	rec := &stubRecorder{}
	svc := NewAnalyticsService(f, rec)

	token1, ok1 := models.ParseInstrument("btc")
	token2, ok2 := models.ParseInstrument("snp")
	require.True(t, ok1 && ok2)

	res, err := svc.Covariance(context.Background(), token1, token2)
	require.NoError(t, err)
	assert.Equal(t, models.Bitcoin, res.Token1)
	assert.Equal(t, models.Snp500, res.Token2)
	assert.False(t, math.IsNaN(res.Covariance) || math.IsInf(res.Covariance, 0))
	assert.GreaterOrEqual(t, res.CorrelationCoefficient, -1.0)
	assert.LessOrEqual(t, res.CorrelationCoefficient, 1.0)
	assert.ElementsMatch(t, []models.Instrument{models.Bitcoin, models.Snp500}, f.calls)
	assert.Equal(t, []string{"covariance"}, rec.kinds)
	assert.NoError(t, rec.errs[0])
}

func TestCovariance_Failures(t *testing.T) {
	upstream := errors.New("attempts reached")
	disjoint := models.NewSeries(models.Snp500)
	disjoint.Set(models.Date{Year: 2020, Month: time.January, Day: 1}, 1)

	cases := []struct {
		name    string
		fetcher *stubFetcher
		wantErr error
	}{
		{
			name: "fetch error",
			fetcher: &stubFetcher{
				series: map[models.Instrument]models.Series{models.Snp500: dailySeries(models.Snp500, 5, func(i int) float64 { return 1 })},
				errs:   map[models.Instrument]error{models.Bitcoin: upstream},
			},
			wantErr: upstream,
		},
		{
			name: "no overlap",
			fetcher: &stubFetcher{series: map[models.Instrument]models.Series{
				models.Bitcoin: dailySeries(models.Bitcoin, 3, func(i int) float64 { return float64(i) }),
				models.Snp500:  disjoint,
			}},
			wantErr: stats.ErrNoOverlap,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &stubRecorder{}
			res, err := NewAnalyticsService(tc.fetcher, rec).Covariance(context.Background(), models.Bitcoin, models.Snp500)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, res)
			require.Len(t, rec.errs, 1)
			assert.Error(t, rec.errs[0])
		})
	}
}

func TestCovariance_ZeroVarianceYieldsNaN(t *testing.T) {
	f := &stubFetcher{series: map[models.Instrument]models.Series{
		models.Bitcoin:  dailySeries(models.Bitcoin, 10, func(int) float64 { return 100 }),
		models.Ethereum: dailySeries(models.Ethereum, 10, func(i int) float64 { return float64(i) }),
	}}
	res, err := NewAnalyticsService(f, nil).Covariance(context.Background(), models.Bitcoin, models.Ethereum)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Covariance, 1e-12)
	assert.True(t, math.IsNaN(res.CorrelationCoefficient))
}

func TestVolatility(t *testing.T) {
	f := &stubFetcher{series: map[models.Instrument]models.Series{
		models.Solana: dailySeries(models.Solana, 30, func(i int) float64 { return 100 * math.Exp(0.01*float64(i%3)) }),
	}}
	rec := &stubRecorder{}
	res, err := NewAnalyticsService(f, rec).Volatility(context.Background(), models.Solana)
	require.NoError(t, err)
	assert.Equal(t, models.Solana, res.Token)
	assert.Greater(t, res.Volatility, 0.0)
	assert.Equal(t, []string{"volatility"}, rec.kinds)
}

func TestVolatility_Failures(t *testing.T) {
	upstream := errors.New("fatal upstream status")
	cases := []struct {
		name    string
		fetcher *stubFetcher
		wantErr error
	}{
		{"fetch error", &stubFetcher{errs: map[models.Instrument]error{models.Bitcoin: upstream}}, upstream},
		{"empty series", &stubFetcher{series: map[models.Instrument]models.Series{models.Bitcoin: models.NewSeries(models.Bitcoin)}}, stats.ErrEmptySeries},
		{"single point", &stubFetcher{series: map[models.Instrument]models.Series{
			models.Bitcoin: dailySeries(models.Bitcoin, 1, func(int) float64 { return 1 }),
		}}, stats.ErrInsufficientSamples},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAnalyticsService(tc.fetcher, nil).Volatility(context.Background(), models.Bitcoin)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
