package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DashboardRequest identifies one currency selection.
// Reference is empty when the configured reference currency should be used.
type DashboardRequest struct {
	Currency  string
	Reference string
}

// ExportRequest is a DashboardRequest plus the requested download format.
type ExportRequest struct {
	DashboardRequest
	Format string
}

// ParseDashboardRequest reads the currency URL parameter and the optional
// reference query parameter. Values are trimmed but not validated.
func ParseDashboardRequest(r *http.Request) DashboardRequest {
	return DashboardRequest{
		Currency:  CurrencyParam(r),
		Reference: strings.TrimSpace(r.URL.Query().Get("reference")),
	}
}

// ParseExportRequest reads a DashboardRequest and the format query parameter.
func ParseExportRequest(r *http.Request) ExportRequest {
	return ExportRequest{
		DashboardRequest: ParseDashboardRequest(r),
		Format:           strings.TrimSpace(r.URL.Query().Get("format")),
	}
}

// CurrencyParam returns the unescaped, trimmed currency URL parameter.
// chi matches on the raw path when it holds escapes, so "USD%2FEUR" arrives escaped.
// A segment with an invalid escape is returned as is.
func CurrencyParam(r *http.Request) string {
	raw := chi.URLParam(r, "currency")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return strings.TrimSpace(raw)
}
