package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricestats/internal/domain/dto"
	"github.com/guttosm/pricestats/internal/domain/models"
	"github.com/guttosm/pricestats/internal/service"
)

// Handler provides HTTP handlers for the statistics endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters and resolve instrument aliases
//   - Delegate computation to the analytics service
//   - Translate results into response DTOs
//
// Client input problems answer 400 and computation failures answer 500,
// both with the message as plain text.
type Handler struct {
	svc service.AnalyticsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.AnalyticsService) *Handler {
	return &Handler{svc: svc}
}

// GetCovariance handles GET /covariance requests.
//
// GetCovariance godoc
// @Summary      Covariance between two instruments
// @Description  Population covariance and Pearson correlation of daily closes over the trailing year
// @Tags         statistics
// @Produce      json
// @Param        token_1  query     string  true  "First instrument (bitcoin|btc, ethereum|eth, solana|sol, snp500|snp)" example(btc)
// @Param        token_2  query     string  true  "Second instrument" example(snp)
// @Success      200      {object}  dto.CovarianceResponse  "Success"
// @Failure      400      {string}  string                  "Missing or invalid token"
// @Failure      500      {string}  string                  "Computation failure"
// @Router       /covariance [get]
func (h *Handler) GetCovariance(c *gin.Context) {
	token1, ok := h.token(c, "token_1")
	if !ok {
		return
	}
	token2, ok := h.token(c, "token_2")
	if !ok {
		return
	}

	res, err := h.svc.Covariance(c.Request.Context(), token1, token2)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewCovarianceResponse(res))
}

// GetVolatility handles GET /volatility requests.
//
// GetVolatility godoc
// @Summary      Realized volatility of an instrument
// @Description  Annualized (sqrt 252) standard deviation of daily log returns over the trailing year
// @Tags         statistics
// @Produce      json
// @Param        token  query     string  true  "Instrument (bitcoin|btc, ethereum|eth, solana|sol, snp500|snp)" example(eth)
// @Success      200    {number}  number  "Annualized volatility"
// @Failure      400    {string}  string  "Missing or invalid token"
// @Failure      500    {string}  string  "Computation failure"
// @Router       /volatility [get]
func (h *Handler) GetVolatility(c *gin.Context) {
	token, ok := h.token(c, "token")
	if !ok {
		return
	}

	res, err := h.svc.Volatility(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.Float(res.Volatility))
}

// token resolves the named query parameter, answering 400 when it is
// missing or unrecognized.
func (h *Handler) token(c *gin.Context, param string) (models.Instrument, bool) {
	raw, present := c.GetQuery(param)
	if !present {
		c.String(http.StatusBadRequest, "Missing query parameter: %s", param)
		return 0, false
	}
	inst, ok := models.ParseInstrument(raw)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid %s value: %s", param, raw)
		return 0, false
	}
	return inst, true
}
