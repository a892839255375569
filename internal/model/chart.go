package model

// ChartSpec is a renderer-agnostic description of the animated exchange rate chart.
// Frame k holds the first k points of the series; the last frame holds them all.
type ChartSpec struct {
	Layout ChartLayout  `json:"layout"`
	Style  TraceStyle   `json:"style"`
	Frames []ChartFrame `json:"frames"`
}

// ChartLayout holds the static layout shared by every frame.
type ChartLayout struct {
	Title      string          `json:"title"`
	XAxis      AxisLayout      `json:"xaxis"`
	YAxis      AxisLayout      `json:"yaxis"`
	ShowLegend bool            `json:"showlegend"`
	Playback   PlaybackControl `json:"playback"`
}

// AxisLayout describes one chart axis. ShowTickLabels is false for an empty chart.
type AxisLayout struct {
	Title          string `json:"title"`
	ShowTickLabels bool   `json:"showticklabels"`
}

// PlaybackControl is the single button that animates through the frames.
type PlaybackControl struct {
	Type            string `json:"type"`            // "buttons"
	Label           string `json:"label"`           // "Play"
	Method          string `json:"method"`          // "animate"
	FrameDurationMs int    `json:"frameDurationMs"` // Interval between frames
	Redraw          bool   `json:"redraw"`          // Full redraw on each step
	FromCurrent     bool   `json:"fromCurrent"`     // Resume from the displayed frame
	ShowActive      bool   `json:"showactive"`
}

// TraceStyle is the visual style shared by every frame.
type TraceStyle struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Color      string `json:"color"`
	ShowLegend bool   `json:"showlegend"`
}

// ChartFrame is one incremental snapshot of the series.
type ChartFrame struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint is a plotted point; X is the date label.
type ChartPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}
