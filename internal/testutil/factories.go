package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// Missing is the value of an empty rate cell.
var Missing = math.NaN()

// RateTableBuilder provides a fluent interface for creating test rate tables.
//
// Example usage:
//
//	table := testutil.NewRateTable("USD", "EUR").
//	    WithRow("2012-01-01", 1.0, 0.8).
//	    WithRow("2012-01-02", 1.0, testutil.Missing).
//	    Build(t)
type RateTableBuilder struct {
	Columns []string
	Axis    model.DateAxis
	rows    []rawRow
}

type rawRow struct {
	key    string
	values []float64
}

// NewRateTable creates a RateTableBuilder with the given columns and a date axis.
func NewRateTable(columns ...string) *RateTableBuilder {
	return &RateTableBuilder{
		Columns: columns,
		Axis:    model.DateAxisDate,
	}
}

// WithRow adds a row keyed by a YYYY-MM-DD date, or by a raw label for text axes.
func (b *RateTableBuilder) WithRow(key string, values ...float64) *RateTableBuilder {
	b.rows = append(b.rows, rawRow{key: key, values: values})
	return b
}

// TextAxis keys the table by raw labels instead of dates.
func (b *RateTableBuilder) TextAxis() *RateTableBuilder {
	b.Axis = model.DateAxisText
	return b
}

// Build creates the RateTable.
func (b *RateTableBuilder) Build(t *testing.T) *model.RateTable {
	t.Helper()

	rows := make([]model.RateRow, len(b.rows))
	for i, r := range b.rows {
		rows[i] = model.RateRow{Label: r.key, Values: r.values}
		if b.Axis == model.DateAxisDate {
			rows[i].Date = MustDate(t, r.key)
		}
	}

	table, err := model.NewRateTable(b.Columns, rows, b.Axis)
	if err != nil {
		t.Fatalf("Failed to create test rate table: %v", err)
	}
	return table
}

// Convenience functions

// MustDate parses a YYYY-MM-DD date or fails the test.
func MustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("Failed to parse test date %q: %v", s, err)
	}
	return d
}

// CreateScenarioTable returns five days of USD and EUR rates. EUR peaks against
// USD on 2012-01-02 (and again on 2012-01-04) and bottoms out on 2012-01-03.
func CreateScenarioTable(t *testing.T) *model.RateTable {
	t.Helper()

	return NewRateTable("USD", "EUR").
		WithRow("2012-01-01", 1.0, 0.8).
		WithRow("2012-01-02", 1.0, 0.75).
		WithRow("2012-01-03", 1.0, 0.9).
		WithRow("2012-01-04", 1.0, 0.75).
		WithRow("2012-01-05", 1.0, 0.85).
		Build(t)
}

// ScenarioCSV is the rate file behind CreateScenarioTable, in day-first dates.
const ScenarioCSV = "Date,USD,EUR\n" +
	"01-01-2012,1.0,0.8\n" +
	"02-01-2012,1.0,0.75\n" +
	"03-01-2012,1.0,0.9\n" +
	"04-01-2012,1.0,0.75\n" +
	"05-01-2012,1.0,0.85\n"

// WriteRateFile writes content to a temporary rate file and returns its path.
func WriteRateFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rates.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test rate file: %v", err)
	}
	return path
}
