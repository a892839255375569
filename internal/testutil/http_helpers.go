package testutil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// This helper simplifies testing chi handlers that use chi.URLParam() to extract path parameters.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/dashboard/EUR",
//	    map[string]string{"currency": "EUR"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewRequestWithQueryParams creates an HTTP request with query parameters.
// This helper simplifies testing handlers that use r.URL.Query() to extract query string parameters.
//
// Example:
//
//	req := testutil.NewRequestWithQueryParams(
//	    http.MethodGet,
//	    "/api/dashboard/EUR/export",
//	    map[string]string{
//	        "format": "xlsx",
//	    },
//	)
func NewRequestWithQueryParams(method, path string, queryParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(queryParams) > 0 {
		q := req.URL.Query()
		for key, value := range queryParams {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req
}

// NewDashboardRequest creates a GET request for a dashboard path with the currency
// URL parameter set and the given query parameters encoded.
//
// Example:
//
//	req := testutil.NewDashboardRequest("/api/dashboard/EUR/export", "EUR", map[string]string{"format": "pdf"})
func NewDashboardRequest(path, currency string, queryParams map[string]string) *http.Request {
	req := NewRequestWithQueryParams(http.MethodGet, path, queryParams)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("currency", currency)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// DecodeJSON decodes a response body into v or fails the test.
func DecodeJSON(t *testing.T, body io.Reader, v any) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
