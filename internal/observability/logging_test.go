package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/derelict/internal/config"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := config.LoggingConfig{Level: "info", Format: format}
		logger, err := NewLogger(cfg)
		require.NoError(t, err, "format %q should build", format)
		assert.NotNil(t, logger)
	}
}

// TestNewLogger_LevelGate verifies that the configured level actually gates
// output: a warn logger must not enable info.
func TestNewLogger_LevelGate(t *testing.T) {
	cfg := config.LoggingConfig{Level: "warn", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLogger_AllLevels(t *testing.T) {
	levels := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for name, level := range levels {
		cfg := config.LoggingConfig{Level: name, Format: "json"}
		logger, err := NewLogger(cfg)
		require.NoError(t, err, "level %q should be valid", name)
		assert.True(t, logger.Core().Enabled(level))
	}
}

func TestNewLogger_Rejections(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{"unknown level", config.LoggingConfig{Level: "trace", Format: "json"}},
		{"unknown format", config.LoggingConfig{Level: "info", Format: "xml"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLogger(tc.cfg)
			assert.Error(t, err)
		})
	}
}
