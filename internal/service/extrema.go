package service

import (
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// FindExtrema returns the dates on which the series reaches its highest and
// lowest value, formatted YYYY-MM-DD.
//
// Ties resolve to the earliest date. A series with no points, or one whose rows
// are keyed by text labels instead of dates, yields the "No valid data" report.
func FindExtrema(series model.NormalizedSeries) model.ExtremaReport {
	if series.IsEmpty() || series.Axis == model.DateAxisText {
		return model.NoValidDataReport()
	}

	peak, trough := 0, 0
	for i, p := range series.Points {
		if p.Value > series.Points[peak].Value {
			peak = i
		}
		if p.Value < series.Points[trough].Value {
			trough = i
		}
	}

	return model.ExtremaReport{
		PeakDate:   series.Points[peak].Date.Format(model.DateLayout),
		TroughDate: series.Points[trough].Date.Format(model.DateLayout),
	}
}
