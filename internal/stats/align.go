package stats

import (
	"fmt"

	"github.com/guttosm/pricestats/internal/domain/models"
)

// Align reconciles two independently fetched series onto their common days.
//
// When the sizes differ, days of the larger series that the smaller one lacks
// are dropped first. If the trimmed sides still differ in size the smaller
// series held days missing from the larger one, which is reported as
// ErrAlignmentInconsistency. Inputs are not modified.
func Align(a, b models.Series) (models.AlignedPair, error) {
	left, right := clone(a), clone(b)

	switch {
	case left.Len() > right.Len():
		retainShared(left, right)
	case right.Len() > left.Len():
		retainShared(right, left)
	}

	common := make([]models.Date, 0, left.Len())
	for d := range left.Prices {
		if right.Has(d) {
			common = append(common, d)
		}
	}
	if len(common) == 0 {
		return models.AlignedPair{}, fmt.Errorf("%w: %s and %s", ErrNoOverlap, a.Instrument, b.Instrument)
	}

	if left.Len() != right.Len() {
		return models.AlignedPair{}, fmt.Errorf("%w: %s<%d> vs %s<%d>",
			ErrAlignmentInconsistency, a.Instrument, left.Len(), b.Instrument, right.Len())
	}

	// Equal sizes do not imply equal keys; project both onto the intersection.
	retainShared(left, right)
	retainShared(right, left)
	models.SortDates(common)

	return models.AlignedPair{
		A:        left,
		B:        right,
		Dates:    common,
		DroppedA: a.Len() - left.Len(),
		DroppedB: b.Len() - right.Len(),
	}, nil
}

// retainShared deletes from s every day that other does not hold.
func retainShared(s, other models.Series) {
	for d := range s.Prices {
		if !other.Has(d) {
			delete(s.Prices, d)
		}
	}
}

func clone(s models.Series) models.Series {
	out := models.Series{Instrument: s.Instrument, Prices: make(map[models.Date]float64, len(s.Prices))}
	for d, p := range s.Prices {
		out.Prices[d] = p
	}
	return out
}
