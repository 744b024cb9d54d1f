package models

// CovarianceResult is the pairwise statistic between two instruments'
// closing prices over their common days.
type CovarianceResult struct {
	Token1                 Instrument `json:"token_1"`
	Token2                 Instrument `json:"token_2"`
	Covariance             float64    `json:"covariance"`
	CorrelationCoefficient float64    `json:"correlation_coefficient"`
}

// VolatilityResult is the annualized realized volatility of one instrument.
type VolatilityResult struct {
	Token      Instrument `json:"token"`
	Volatility float64    `json:"volatility"`
}
