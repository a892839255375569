package response

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondJSON(t *testing.T) {
	t.Run("sets content-type and status code correctly", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, 200, map[string]string{"message": "success"})

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"success"}`, w.Body.String())
	})

	t.Run("handles nil data without error", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, 204, nil)

		assert.Equal(t, 204, w.Code)
		assert.Zero(t, w.Body.Len())
	})

	t.Run("handles un-encodable data gracefully", func(t *testing.T) {
		w := httptest.NewRecorder()

		// Channels cannot be JSON encoded
		assert.NotPanics(t, func() {
			RespondJSON(w, 200, map[string]interface{}{"channel": make(chan int)})
		})
		assert.Equal(t, 200, w.Code)
	})
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondError(w, 404, "currency column not found", "XYZ")

	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"currency column not found","details":"XYZ"}`, w.Body.String())
}

func TestRespondAttachment(t *testing.T) {
	w := httptest.NewRecorder()

	RespondAttachment(w, "text/csv", "EUR_in_USD.csv", []byte("Date,EUR\n"))

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=EUR_in_USD.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "9", w.Header().Get("Content-Length"))
	assert.Equal(t, "Date,EUR\n", w.Body.String())
}

// TestRespondAttachment_Filenames tests Content-Disposition quoting for column
// names that are not plain tokens.
func TestRespondAttachment_Filenames(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "spaces are quoted",
			filename: "Hong Kong Dollar_in_USD.csv",
			want:     `attachment; filename="Hong Kong Dollar_in_USD.csv"`,
		},
		{
			name:     "backslash and quote are escaped",
			filename: `a\b"c.csv`,
			want:     `attachment; filename="a\\b\"c.csv"`,
		},
		{
			name:     "non-ASCII uses the extended form",
			filename: "€_in_USD.csv",
			want:     "attachment; filename*=utf-8''%E2%82%AC_in_USD.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondAttachment(w, "text/csv", tt.filename, nil)

			assert.Equal(t, tt.want, w.Header().Get("Content-Disposition"))
		})
	}
}
