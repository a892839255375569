package request

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/testutil"
)

func TestParseDashboardRequest(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		query    map[string]string
		wantCurr string
		wantRef  string
	}{
		{name: "plain code", param: "EUR", wantCurr: "EUR"},
		{name: "escaped slash", param: "USD%2FEUR", wantCurr: "USD/EUR"},
		{name: "escaped percent", param: "100%25", wantCurr: "100%"},
		{name: "escaped space is trimmed", param: "%20EUR%20", wantCurr: "EUR"},
		{name: "invalid escape is kept", param: "EUR%zz", wantCurr: "EUR%zz"},
		{name: "reference query", param: "EUR", query: map[string]string{"reference": " GBP "}, wantCurr: "EUR", wantRef: "GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.NewDashboardRequest("/api/dashboard/x", tt.param, tt.query)

			req := ParseDashboardRequest(r)

			assert.Equal(t, tt.wantCurr, req.Currency)
			assert.Equal(t, tt.wantRef, req.Reference)
		})
	}
}

func TestParseExportRequest(t *testing.T) {
	r := testutil.NewDashboardRequest("/api/dashboard/EUR/export", "EUR", map[string]string{"format": "xlsx"})

	req := ParseExportRequest(r)

	assert.Equal(t, "EUR", req.Currency)
	assert.Equal(t, "xlsx", req.Format)
	assert.Empty(t, req.Reference)

	assert.Equal(t, "EUR", CurrencyParam(testutil.NewRequestWithURLParams(http.MethodGet, "/", map[string]string{"currency": "EUR"})))
}
