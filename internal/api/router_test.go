package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/config"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/testutil"
)

func setupRouter(t *testing.T, table *model.RateTable) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}}

	return NewRouter(
		testutil.NewTestSystemService(t, db, table),
		testutil.NewTestDashboardService(t, table, "USD"),
		cfg,
		zap.NewNop(),
	)
}

func TestRouter_Routes(t *testing.T) {
	router := setupRouter(t, testutil.CreateScenarioTable(t))

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "dashboard page", path: "/", status: http.StatusOK},
		{name: "health", path: "/api/system/health", status: http.StatusOK},
		{name: "version", path: "/api/system/version", status: http.StatusOK},
		{name: "currencies", path: "/api/currency", status: http.StatusOK},
		{name: "dashboard", path: "/api/dashboard/EUR", status: http.StatusOK},
		{name: "dashboard with reference", path: "/api/dashboard/USD?reference=EUR", status: http.StatusOK},
		{name: "series", path: "/api/dashboard/EUR/series", status: http.StatusOK},
		{name: "export", path: "/api/dashboard/EUR/export?format=pdf", status: http.StatusOK},
		{name: "unknown currency", path: "/api/dashboard/XYZ", status: http.StatusNotFound},
		{name: "bad export format", path: "/api/dashboard/EUR/export?format=docx", status: http.StatusBadRequest},
		{name: "control character in currency", path: "/api/dashboard/E%01R", status: http.StatusBadRequest},
		{name: "unknown route", path: "/api/portfolio", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

// TestRouter_EscapedCurrency tests that a column listed in the dropdown is reachable
// when its name has characters the page escapes into the path.
func TestRouter_EscapedCurrency(t *testing.T) {
	table := testutil.NewRateTable("USD", "USD/EUR", "100%").
		WithRow("2012-01-01", 1.0, 0.8, 0.5).
		WithRow("2012-01-02", 1.0, 0.75, 0.4).
		Build(t)
	router := setupRouter(t, table)

	for _, path := range []string{
		"/api/dashboard/USD%2FEUR",
		"/api/dashboard/USD%2FEUR/series",
		"/api/dashboard/USD%2FEUR/export?format=csv",
		"/api/dashboard/100%25",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}

	t.Run("export filename keeps the column name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/USD%2FEUR/export", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, `attachment; filename="USD/EUR_in_USD.csv"`, w.Header().Get("Content-Disposition"))
	})
}

func TestRouter_CORS(t *testing.T) {
	router := setupRouter(t, testutil.CreateScenarioTable(t))

	req := httptest.NewRequest(http.MethodGet, "/api/currency", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/currency", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
