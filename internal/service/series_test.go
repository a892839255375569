package service_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/testutil"
)

// TestTransform_Scenario tests the USD/EUR ratio over five days.
//
// WHY: This is the reference example for the dashboard; every downstream output
// (chart and extrema) is derived from these values.
func TestTransform_Scenario(t *testing.T) {
	table := testutil.CreateScenarioTable(t)

	series, err := service.Transform(table, "USD", "EUR")
	require.NoError(t, err)

	want := []float64{1.25, 1.0 / 0.75, 1.0 / 0.9, 1.0 / 0.75, 1.0 / 0.85}
	require.Equal(t, len(want), series.Len())
	for i, p := range series.Points {
		assert.InDelta(t, want[i], p.Value, 1e-12, "point %d", i)
	}
	assert.Equal(t, "2012-01-01", series.Points[0].Label)
	assert.Equal(t, "USD", series.Reference)
	assert.Equal(t, "EUR", series.Selected)
	assert.Equal(t, model.DateAxisDate, series.Axis)
}

func TestTransform_InvalidColumn(t *testing.T) {
	table := testutil.CreateScenarioTable(t)

	t.Run("unknown selected column", func(t *testing.T) {
		_, err := service.Transform(table, "USD", "XYZ")
		assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)
		assert.Contains(t, err.Error(), "XYZ")
	})

	t.Run("unknown reference column", func(t *testing.T) {
		_, err := service.Transform(table, "GBP", "EUR")
		assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)
	})

	t.Run("column names are case sensitive", func(t *testing.T) {
		_, err := service.Transform(table, "USD", "eur")
		assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)
	})
}

func TestTransform_DropsMissingAndNonFinite(t *testing.T) {
	table := testutil.NewRateTable("USD", "EUR").
		WithRow("2012-01-01", 1.0, 0.8).
		WithRow("2012-01-02", testutil.Missing, 0.8).
		WithRow("2012-01-03", 1.0, testutil.Missing).
		WithRow("2012-01-04", 1.0, 0).
		WithRow("2012-01-05", 0, 0).
		WithRow("2012-01-06", math.Inf(1), 2).
		WithRow("2012-01-07", 1.0, 0.5).
		Build(t)

	series, err := service.Transform(table, "USD", "EUR")
	require.NoError(t, err)

	require.Equal(t, 2, series.Len())
	assert.Equal(t, "2012-01-01", series.Points[0].Label)
	assert.Equal(t, "2012-01-07", series.Points[1].Label)
	assert.InDelta(t, 2.0, series.Points[1].Value, 1e-12)
}

func TestTransform_SelfDivision(t *testing.T) {
	table := testutil.NewRateTable("USD", "EUR").
		WithRow("2012-01-01", 1.0, 0.8).
		WithRow("2012-01-02", 1.0, 0.75).
		WithRow("2012-01-03", 1.0, testutil.Missing).
		Build(t)

	series, err := service.Transform(table, "EUR", "EUR")
	require.NoError(t, err)

	require.Equal(t, 2, series.Len())
	for _, p := range series.Points {
		assert.Equal(t, 1.0, p.Value)
	}
}

func TestTransform_NoOverlap(t *testing.T) {
	table := testutil.NewRateTable("USD", "EUR").
		WithRow("2012-01-01", 1.0, testutil.Missing).
		WithRow("2012-01-02", testutil.Missing, 0.75).
		Build(t)

	series, err := service.Transform(table, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, series.IsEmpty())
}

func TestTransform_TextAxisKeepsRowOrder(t *testing.T) {
	table := testutil.NewRateTable("USD", "EUR").
		TextAxis().
		WithRow("Q2", 1.0, 0.8).
		WithRow("Q1", 1.0, 0.5).
		Build(t)

	series, err := service.Transform(table, "USD", "EUR")
	require.NoError(t, err)

	require.Equal(t, 2, series.Len())
	assert.Equal(t, model.DateAxisText, series.Axis)
	assert.Equal(t, "Q2", series.Points[0].Label)
	assert.Equal(t, "Q1", series.Points[1].Label)
}

// TestTransform_Properties checks finiteness, ordering and idempotence over
// randomly generated tables with missing and zero cells.
func TestTransform_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	columns := []string{"USD", "EUR", "GBP", "JPY"}
	start := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)

	cell := func() float64 {
		switch rng.Intn(10) {
		case 0:
			return testutil.Missing
		case 1:
			return 0
		case 2:
			return math.Inf(1)
		default:
			return rng.Float64() * 200
		}
	}

	for trial := 0; trial < 50; trial++ {
		builder := testutil.NewRateTable(columns...)
		// Insert dates out of order; the table sorts them
		for _, day := range rng.Perm(30) {
			values := make([]float64, len(columns))
			for i := range values {
				values[i] = cell()
			}
			builder.WithRow(start.AddDate(0, 0, day).Format(model.DateLayout), values...)
		}
		table := builder.Build(t)

		for _, a := range columns {
			for _, b := range columns {
				first, err := service.Transform(table, a, b)
				require.NoError(t, err)

				for i, p := range first.Points {
					assert.False(t, math.IsNaN(p.Value) || math.IsInf(p.Value, 0),
						"trial %d %s/%s: non-finite value at %s", trial, a, b, p.Label)
					if i > 0 {
						assert.True(t, first.Points[i-1].Date.Before(p.Date),
							"trial %d %s/%s: dates not strictly increasing at %s", trial, a, b, p.Label)
					}
					if a == b {
						assert.Equal(t, 1.0, p.Value)
					}
				}

				second, err := service.Transform(table, a, b)
				require.NoError(t, err)
				assert.Equal(t, first, second, "trial %d %s/%s: not idempotent", trial, a, b)
			}
		}
	}
}
