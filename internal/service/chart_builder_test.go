package service_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/testutil"
)

func TestBuildChart_Frames(t *testing.T) {
	series, err := service.Transform(testutil.CreateScenarioTable(t), "USD", "EUR")
	require.NoError(t, err)

	chart := service.BuildChart(series, "EUR", "USD")

	require.Len(t, chart.Frames, series.Len())
	for k, frame := range chart.Frames {
		assert.Equal(t, fmt.Sprintf("frame%d", k+1), frame.Name)
		require.Len(t, frame.Points, k+1)
		for i, p := range frame.Points {
			assert.Equal(t, series.Points[i].Label, p.X)
			assert.Equal(t, series.Points[i].Value, p.Y)
		}
	}

	last := chart.Frames[len(chart.Frames)-1]
	require.Len(t, last.Points, series.Len())
}

func TestBuildChart_FramesAreIndependent(t *testing.T) {
	series, err := service.Transform(testutil.CreateScenarioTable(t), "USD", "EUR")
	require.NoError(t, err)

	chart := service.BuildChart(series, "EUR", "USD")

	// Appending to an early frame must not overwrite points of later frames
	grown := append(chart.Frames[0].Points, model.ChartPoint{X: "bogus", Y: -1})
	assert.Len(t, grown, 2)
	assert.Equal(t, "2012-01-02", chart.Frames[1].Points[1].X)
}

func TestBuildChart_Layout(t *testing.T) {
	series, err := service.Transform(testutil.CreateScenarioTable(t), "USD", "EUR")
	require.NoError(t, err)

	chart := service.BuildChart(series, "EUR", "USD")

	assert.Equal(t, "Exchange Rate between 1 USD and EUR", chart.Layout.Title)
	assert.Equal(t, "Date", chart.Layout.XAxis.Title)
	assert.Equal(t, "Value of 1 EUR in USD", chart.Layout.YAxis.Title)
	assert.True(t, chart.Layout.XAxis.ShowTickLabels)
	assert.False(t, chart.Layout.ShowLegend)

	play := chart.Layout.Playback
	assert.Equal(t, "buttons", play.Type)
	assert.Equal(t, "Play", play.Label)
	assert.Equal(t, "animate", play.Method)
	assert.Equal(t, 500, play.FrameDurationMs)
	assert.True(t, play.Redraw)
	assert.True(t, play.FromCurrent)

	assert.Equal(t, "EUR against USD", chart.Style.Name)
	assert.Equal(t, "lines+markers", chart.Style.Mode)
	assert.Equal(t, "blue", chart.Style.Color)
	assert.False(t, chart.Style.ShowLegend)
}

func TestBuildChart_NamesAppearInLabels(t *testing.T) {
	for _, pair := range [][2]string{{"USD", "EUR"}, {"EUR", "JPY"}, {"Pound Sterling", "Swiss franc"}} {
		ref, sel := pair[0], pair[1]
		chart := service.BuildChart(model.NormalizedSeries{}, sel, ref)

		assert.Contains(t, chart.Layout.Title, ref)
		assert.Contains(t, chart.Layout.Title, sel)
		assert.Contains(t, chart.Layout.YAxis.Title, ref)
		assert.Contains(t, chart.Layout.YAxis.Title, sel)
	}
}

func TestBuildChart_EmptySeries(t *testing.T) {
	chart := service.BuildChart(model.NormalizedSeries{Reference: "USD", Selected: "EUR"}, "EUR", "USD")

	assert.Empty(t, chart.Frames)
	assert.False(t, chart.Layout.XAxis.ShowTickLabels)
	assert.False(t, chart.Layout.YAxis.ShowTickLabels)
	assert.Equal(t, "Exchange Rate between 1 USD and EUR", chart.Layout.Title)

	// Encodes as an empty list, not null
	data, err := json.Marshal(chart)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"frames":[]`)
}
