package stats

import (
	"time"

	"github.com/guttosm/pricestats/internal/domain/models"
)

var day0 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// seriesFrom builds a series with one price per consecutive day starting at
// day0 plus offset.
func seriesFrom(inst models.Instrument, offset int, prices ...float64) models.Series {
	s := models.NewSeries(inst)
	for i, p := range prices {
		s.Set(models.DateOf(day0.AddDate(0, 0, offset+i)), p)
	}
	return s
}
