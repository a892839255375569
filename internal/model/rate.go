package model

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
)

// DateAxis describes how the row keys of a RateTable are typed.
type DateAxis string

const (
	// DateAxisDate means every row key is a calendar date.
	DateAxisDate DateAxis = "date"
	// DateAxisText means the row keys are raw labels that could not be read as dates.
	DateAxisText DateAxis = "text"
)

// DateLayout is the layout used for every date leaving the service.
const DateLayout = "2006-01-02"

// RateRow is one row of a RateTable.
// Values are aligned with the table columns; a missing value is NaN.
type RateRow struct {
	Date   time.Time // Zero when the table has a text axis
	Label  string    // Raw key for text axes, YYYY-MM-DD for date axes
	Values []float64
}

// RateTable is an immutable table of exchange rates keyed by date with one
// numeric column per currency code.
//
// Rows are held in ascending date order for date axes and in source order for
// text axes. A RateTable is safe for concurrent readers.
type RateTable struct {
	columns []string
	index   map[string]int
	rows    []RateRow
	axis    DateAxis
}

// NewRateTable validates and copies the given columns and rows into a RateTable.
//
// Requirements:
//   - at least one column, with no blank or duplicate names
//   - every row carries exactly one value per column
//   - for date axes, no date appears twice
//
// Rows of a date axis are sorted ascending; rows of a text axis keep their order.
func NewRateTable(columns []string, rows []RateRow, axis DateAxis) (*RateTable, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no currency columns", apperrors.ErrInvalidCSVHeaders)
	}
	if axis != DateAxisDate && axis != DateAxisText {
		return nil, fmt.Errorf("unknown date axis %q", axis)
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("%w: blank column name at position %d", apperrors.ErrInvalidCSVHeaders, i)
		}
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", apperrors.ErrInvalidCSVHeaders, c)
		}
		index[c] = i
	}

	copied := make([]RateRow, len(rows))
	for i, row := range rows {
		if len(row.Values) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d",
				apperrors.ErrRowWidthMismatch, i, len(row.Values), len(columns))
		}
		r := RateRow{Date: row.Date, Label: row.Label, Values: slices.Clone(row.Values)}
		if axis == DateAxisDate {
			r.Date = time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC)
			r.Label = r.Date.Format(DateLayout)
		}
		copied[i] = r
	}

	if axis == DateAxisDate {
		slices.SortStableFunc(copied, func(a, b RateRow) int { return a.Date.Compare(b.Date) })
		for i := 1; i < len(copied); i++ {
			if copied[i].Date.Equal(copied[i-1].Date) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateDate, copied[i].Label)
			}
		}
	}

	return &RateTable{
		columns: slices.Clone(columns),
		index:   index,
		rows:    copied,
		axis:    axis,
	}, nil
}

// Columns returns the currency column names in source order.
func (t *RateTable) Columns() []string {
	return slices.Clone(t.columns)
}

// HasColumn reports whether name is a column of the table.
func (t *RateTable) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *RateTable) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Axis returns the date-axis kind of the table.
func (t *RateTable) Axis() DateAxis {
	return t.axis
}

// Len returns the number of rows.
func (t *RateTable) Len() int {
	return len(t.rows)
}

// Key returns the date and label of row i.
func (t *RateTable) Key(i int) (time.Time, string) {
	return t.rows[i].Date, t.rows[i].Label
}

// Value returns the value of row i in column col, NaN when missing.
func (t *RateTable) Value(i, col int) float64 {
	return t.rows[i].Values[col]
}

// IsMissing reports whether v represents a missing cell.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
