package model

import "fmt"

// NoValidData is reported for both extrema when a series has nothing to rank.
const NoValidData = "No valid data"

// ExtremaReport holds the dates on which a normalized series peaks and bottoms out.
type ExtremaReport struct {
	PeakDate   string `json:"peakDate"`
	TroughDate string `json:"troughDate"`
}

// NoValidDataReport returns the sentinel report for an empty or undated series.
func NoValidDataReport() ExtremaReport {
	return ExtremaReport{PeakDate: NoValidData, TroughDate: NoValidData}
}

// Lines renders the report as the two text lines shown under the chart.
func (r ExtremaReport) Lines() []string {
	return []string{
		fmt.Sprintf("Date of Peak Rate: %s", r.PeakDate),
		fmt.Sprintf("Date of Lowest Rate: %s", r.TroughDate),
	}
}

// DashboardView is everything the dashboard page redraws after a selection change.
type DashboardView struct {
	Currency    string        `json:"currency"`
	Reference   string        `json:"reference"`
	Chart       ChartSpec     `json:"chart"`
	Extrema     ExtremaReport `json:"extrema"`
	ExtremaText []string      `json:"extremaText"`
}

// CurrencyListing feeds the currency dropdown.
type CurrencyListing struct {
	Currencies        []string `json:"currencies"`
	DefaultCurrency   string   `json:"defaultCurrency"`
	ReferenceCurrency string   `json:"referenceCurrency"`
}
