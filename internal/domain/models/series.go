package models

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar day without time-of-day. It is comparable and used as
// the key of a Series.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateFromUnix converts UNIX seconds to the UTC calendar day.
func DateFromUnix(sec int64) Date {
	return DateOf(time.Unix(sec, 0))
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// PricePoint is a closing price on a given day.
type PricePoint struct {
	Date  Date
	Close float64
}

// Series maps each day to the closing price of one instrument.
// At most one price is kept per day.
type Series struct {
	Instrument Instrument
	Prices     map[Date]float64
}

// NewSeries returns an empty series for the instrument.
func NewSeries(inst Instrument) Series {
	return Series{Instrument: inst, Prices: make(map[Date]float64)}
}

// Set stores the closing price for a day, replacing any previous value.
func (s Series) Set(d Date, price float64) {
	s.Prices[d] = price
}

// Len returns the number of days in the series.
func (s Series) Len() int { return len(s.Prices) }

// Has reports whether the series holds a price for d.
func (s Series) Has(d Date) bool {
	_, ok := s.Prices[d]
	return ok
}

// Dates returns the keys in ascending order.
func (s Series) Dates() []Date {
	out := make([]Date, 0, len(s.Prices))
	for d := range s.Prices {
		out = append(out, d)
	}
	SortDates(out)
	return out
}

// Points returns the series as chronologically sorted price points.
func (s Series) Points() []PricePoint {
	dates := s.Dates()
	out := make([]PricePoint, len(dates))
	for i, d := range dates {
		out[i] = PricePoint{Date: d, Close: s.Prices[d]}
	}
	return out
}

// SortDates sorts in place, oldest first.
func SortDates(dates []Date) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}

// AlignedPair holds two series restricted to their common days.
//
// A and B always have identical key sets; Dates lists them in ascending
// order. DroppedA and DroppedB count the days removed from each side.
type AlignedPair struct {
	A        Series
	B        Series
	Dates    []Date
	DroppedA int
	DroppedB int
}

// Len returns the number of common days.
func (p AlignedPair) Len() int { return len(p.Dates) }
