package service

import (
	"fmt"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// Chart constants shared by every dashboard view.
const (
	chartMode            = "lines+markers"
	chartColor           = "blue"
	chartFrameDurationMs = 500
)

// BuildChart turns a normalized series into an animated chart specification.
//
// Frame k (named "frame{k}", k starting at 1) holds the first k points, so playing
// the frames draws the line point by point. Frames share one backing array of
// points; each frame is capped so appending to it never leaks into the next.
//
// An empty series gives a spec with no frames and axes without tick labels.
// BuildChart never fails.
func BuildChart(series model.NormalizedSeries, selected, reference string) model.ChartSpec {
	points := make([]model.ChartPoint, len(series.Points))
	for i, p := range series.Points {
		points[i] = model.ChartPoint{X: p.Label, Y: p.Value}
	}

	frames := make([]model.ChartFrame, len(points))
	for k := 1; k <= len(points); k++ {
		frames[k-1] = model.ChartFrame{
			Name:   fmt.Sprintf("frame%d", k),
			Points: points[:k:k],
		}
	}

	hasData := len(points) > 0

	return model.ChartSpec{
		Layout: model.ChartLayout{
			Title: fmt.Sprintf("Exchange Rate between 1 %s and %s", reference, selected),
			XAxis: model.AxisLayout{Title: "Date", ShowTickLabels: hasData},
			YAxis: model.AxisLayout{
				Title:          fmt.Sprintf("Value of 1 %s in %s", selected, reference),
				ShowTickLabels: hasData,
			},
			ShowLegend: false,
			Playback: model.PlaybackControl{
				Type:            "buttons",
				Label:           "Play",
				Method:          "animate",
				FrameDurationMs: chartFrameDurationMs,
				Redraw:          true,
				FromCurrent:     true,
				ShowActive:      false,
			},
		},
		Style: model.TraceStyle{
			Name:       fmt.Sprintf("%s against %s", selected, reference),
			Mode:       chartMode,
			Color:      chartColor,
			ShowLegend: false,
		},
		Frames: frames,
	}
}
