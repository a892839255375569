package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/testutil"
)

func TestValidateCurrencyMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		currency   string
		wantStatus int
		wantCalled bool
	}{
		{name: "valid currency", currency: "EUR", wantStatus: http.StatusOK, wantCalled: true},
		{name: "escaped column name", currency: "USD%2FEUR", wantStatus: http.StatusOK, wantCalled: true},
		{name: "missing currency", currency: "", wantStatus: http.StatusBadRequest},
		{name: "whitespace only", currency: "   ", wantStatus: http.StatusBadRequest},
		{name: "escaped whitespace only", currency: "%20%20", wantStatus: http.StatusBadRequest},
		{name: "too long", currency: strings.Repeat("A", 65), wantStatus: http.StatusBadRequest},
		{name: "control character", currency: "EU\tR", wantStatus: http.StatusBadRequest},
		{name: "escaped control character", currency: "EU%00R", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/dashboard/x", map[string]string{"currency": tt.currency})
			w := httptest.NewRecorder()

			ValidateCurrencyMiddleware(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
	}{
		{name: "success logs at info", status: http.StatusOK, wantLevel: zapcore.InfoLevel},
		{name: "client error logs at warn", status: http.StatusNotFound, wantLevel: zapcore.WarnLevel},
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/EUR", map[string]string{"reference": "USD"})
			Logger(zap.New(core))(next).ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.wantLevel, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(4), fields["bytes"])
			assert.Equal(t, "/api/dashboard/EUR", fields["path"], "path is logged without the query")
		})
	}
}

func TestNewCORS(t *testing.T) {
	handler := NewCORS([]string{"http://localhost:3000"}).Handler(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/currency", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("write methods are not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/currency", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
