package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			logger, err := NewLogger(level)
			require.NoError(t, err)

			want, _ := zapcore.ParseLevel(level)
			assert.True(t, logger.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(want-1))
			}
		})
	}

	_, err := NewLogger("loud")
	assert.Error(t, err)
}
