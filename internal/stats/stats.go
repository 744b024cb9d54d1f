package stats

import (
	"fmt"
	"math"

	"github.com/guttosm/pricestats/internal/domain/models"
)

// TradingDaysPerYear annualizes daily volatility.
const TradingDaysPerYear = 252

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// StdDev returns the population standard deviation (divisor n).
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	sq := 0.0
	for _, v := range values {
		dev := v - mean
		sq += dev * dev
	}
	return math.Sqrt(sq / float64(len(values))), nil
}

// Covariance returns the population covariance of the pair over its common days.
func Covariance(p models.AlignedPair) (float64, error) {
	a, b, err := columns(p)
	if err != nil {
		return 0, err
	}
	return covariance(a, b), nil
}

// Correlation returns the Pearson correlation coefficient of the pair.
// A side with zero variance yields NaN, which is returned as is.
func Correlation(p models.AlignedPair) (float64, error) {
	a, b, err := columns(p)
	if err != nil {
		return 0, err
	}
	return correlation(a, b), nil
}

// CovarianceAndCorrelation computes both statistics in one pass over the pair.
func CovarianceAndCorrelation(p models.AlignedPair) (cov, corr float64, err error) {
	a, b, err := columns(p)
	if err != nil {
		return 0, 0, err
	}
	return covariance(a, b), correlation(a, b), nil
}

// LogReturns maps a chronologically ordered price sequence to the n-1 values
// ln(p[i+1]/p[i]).
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 price points to calculate log returns, got %d",
			ErrInsufficientSamples, len(prices))
	}
	out := make([]float64, len(prices)-1)
	for i := 0; i < len(prices)-1; i++ {
		out[i] = math.Log(prices[i+1] / prices[i])
	}
	return out, nil
}

// AnnualizedStdDev scales the population standard deviation of daily log
// returns by sqrt(252).
func AnnualizedStdDev(logReturns []float64) (float64, error) {
	if len(logReturns) == 0 {
		return 0, fmt.Errorf("%w: no log returns available to calculate standard deviation", ErrInsufficientSamples)
	}
	daily, err := StdDev(logReturns)
	if err != nil {
		return 0, err
	}
	return daily * math.Sqrt(TradingDaysPerYear), nil
}

// RealizedVolatility returns the annualized volatility of the series' daily
// log returns, ordering prices by date first.
func RealizedVolatility(s models.Series) (float64, error) {
	if s.Len() == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptySeries, s.Instrument)
	}
	pts := s.Points()
	prices := make([]float64, len(pts))
	for i, p := range pts {
		prices[i] = p.Close
	}
	rets, err := LogReturns(prices)
	if err != nil {
		return 0, err
	}
	return AnnualizedStdDev(rets)
}

func columns(p models.AlignedPair) ([]float64, []float64, error) {
	if len(p.Dates) == 0 {
		return nil, nil, ErrNoOverlap
	}
	a := make([]float64, len(p.Dates))
	b := make([]float64, len(p.Dates))
	for i, d := range p.Dates {
		av, okA := p.A.Prices[d]
		bv, okB := p.B.Prices[d]
		if !okA || !okB {
			return nil, nil, fmt.Errorf("%w: date %s missing from one side", ErrAlignmentInconsistency, d)
		}
		a[i], b[i] = av, bv
	}
	return a, b, nil
}

func covariance(a, b []float64) float64 {
	meanA, _ := Mean(a)
	meanB, _ := Mean(b)
	sum := 0.0
	for i := range a {
		sum += (a[i] - meanA) * (b[i] - meanB)
	}
	return sum / float64(len(a))
}

func correlation(a, b []float64) float64 {
	sdA, _ := StdDev(a)
	sdB, _ := StdDev(b)
	return covariance(a, b) / (sdA * sdB)
}
