package model

import "time"

// SeriesPoint is one surviving date of a normalized series.
type SeriesPoint struct {
	Date  time.Time `json:"-"`
	Label string    `json:"date"`
	Value float64   `json:"value"`
}

// NormalizedSeries is the per-date ratio Reference/Selected, with missing and
// non-finite ratios removed, in ascending date order.
type NormalizedSeries struct {
	Reference string        `json:"reference"`
	Selected  string        `json:"selected"`
	Axis      DateAxis      `json:"axis"`
	Points    []SeriesPoint `json:"points"`
}

// Len returns the number of points in the series.
func (s NormalizedSeries) Len() int {
	return len(s.Points)
}

// IsEmpty reports whether the series has no points.
func (s NormalizedSeries) IsEmpty() bool {
	return len(s.Points) == 0
}
