package dto

import (
	"math"
	"strconv"

	"github.com/guttosm/pricestats/internal/domain/models"
)

// Float is a float64 that encodes NaN and ±Inf as JSON null, which
// encoding/json cannot otherwise represent.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// CovarianceResponse is the body of GET /covariance.
type CovarianceResponse struct {
	Token1                 string `json:"token_1" example:"Bitcoin"`
	Token2                 string `json:"token_2" example:"Snp500"`
	Covariance             Float  `json:"covariance" swaggertype:"number" example:"1523.77"`
	CorrelationCoefficient Float  `json:"correlation_coefficient" swaggertype:"number" example:"0.42"`
}

// NewCovarianceResponse converts a service result into its wire form.
func NewCovarianceResponse(res *models.CovarianceResult) CovarianceResponse {
	return CovarianceResponse{
		Token1:                 res.Token1.Name(),
		Token2:                 res.Token2.Name(),
		Covariance:             Float(res.Covariance),
		CorrelationCoefficient: Float(res.CorrelationCoefficient),
	}
}

// VolatilityResponse is the one-shot CLI rendering of a volatility result.
// The HTTP endpoint answers with the bare number.
type VolatilityResponse struct {
	Token      string `json:"token"`
	Volatility Float  `json:"volatility"`
}

// NewVolatilityResponse converts a service result into its wire form.
func NewVolatilityResponse(res *models.VolatilityResult) VolatilityResponse {
	return VolatilityResponse{Token: res.Token.Name(), Volatility: Float(res.Volatility)}
}
