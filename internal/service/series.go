package service

import (
	"fmt"
	"math"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// Transform computes the value of one unit of the selected currency expressed in
// the reference currency, for every row of the rate table.
//
// The ratio on each date is reference/selected. A date is dropped when either input
// is missing (NaN) or when the ratio is not finite, which covers division by zero
// and infinite inputs. Surviving points keep the table's row order, so a date axis
// yields points in ascending date order.
//
// Selecting the reference currency itself is allowed; every surviving point then
// has the value 1.
//
// Parameters:
//   - table: The loaded rate table
//   - reference: The column the result is expressed in
//   - selected: The column being valued
//
// Returns apperrors.ErrInvalidColumn (wrapped) when either column is not in the table.
func Transform(table *model.RateTable, reference, selected string) (model.NormalizedSeries, error) {
	refCol, ok := table.ColumnIndex(reference)
	if !ok {
		return model.NormalizedSeries{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidColumn, reference)
	}
	selCol, ok := table.ColumnIndex(selected)
	if !ok {
		return model.NormalizedSeries{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidColumn, selected)
	}

	series := model.NormalizedSeries{
		Reference: reference,
		Selected:  selected,
		Axis:      table.Axis(),
		Points:    make([]model.SeriesPoint, 0, table.Len()),
	}

	for i := 0; i < table.Len(); i++ {
		num := table.Value(i, refCol)
		den := table.Value(i, selCol)
		if model.IsMissing(num) || model.IsMissing(den) {
			continue
		}
		ratio := num / den
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			continue
		}
		date, label := table.Key(i)
		series.Points = append(series.Points, model.SeriesPoint{Date: date, Label: label, Value: ratio})
	}

	return series, nil
}
