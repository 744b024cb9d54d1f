package stats

import "errors"

var (
	// ErrNoOverlap is returned when two series share no day.
	ErrNoOverlap = errors.New("no common dates found between the two series")

	// ErrAlignmentInconsistency is returned when the trimmed series still
	// differ in size.
	ErrAlignmentInconsistency = errors.New("aligned series have different lengths")

	// ErrInsufficientSamples is returned when there are too few points.
	ErrInsufficientSamples = errors.New("not enough samples")

	// ErrEmptySeries is returned for series with no prices.
	ErrEmptySeries = errors.New("no price data available")
)
