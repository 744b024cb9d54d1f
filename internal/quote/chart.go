package quote

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/guttosm/pricestats/internal/domain/models"
)

// chartResponse is the subset of the quote-chart document the fetcher reads.
// Slices stay nil when the field is absent so absence can be told apart from
// an empty array.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// parseChart maps the upstream document onto a Series.
//
// Null closes mark days without a trade and are skipped together with their
// timestamp. Repeated days keep the last price seen.
func parseChart(inst models.Instrument, raw []byte) (models.Series, error) {
	var doc chartResponse
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Series{}, fmt.Errorf("%w: token<%s>: decode chart: %v", ErrMalformedData, inst, err)
	}
	if doc.Chart.Error != nil {
		return models.Series{}, fmt.Errorf("%w: token<%s>: %s %s",
			ErrMalformedData, inst, doc.Chart.Error.Code, doc.Chart.Error.Description)
	}
	if len(doc.Chart.Result) == 0 || len(doc.Chart.Result[0].Indicators.Quote) == 0 ||
		doc.Chart.Result[0].Indicators.Quote[0].Close == nil {
		return models.Series{}, fmt.Errorf("%w: not possible to fetch yearly token<%s> data", ErrMalformedData, inst)
	}

	res := doc.Chart.Result[0]
	closes := res.Indicators.Quote[0].Close
	if res.Timestamp == nil {
		return models.Series{}, fmt.Errorf("%w: token<%s>: timestamp array missing", ErrMalformedData, inst)
	}
	if len(res.Timestamp) != len(closes) {
		return models.Series{}, fmt.Errorf("%w: token<%s>: %d timestamps for %d closes",
			ErrMalformedData, inst, len(res.Timestamp), len(closes))
	}

	s := models.NewSeries(inst)
	for i, c := range closes {
		if c == nil || math.IsNaN(*c) || math.IsInf(*c, 0) {
			continue
		}
		s.Set(models.DateFromUnix(res.Timestamp[i]), *c)
	}
	return s, nil
}
