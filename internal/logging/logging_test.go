package logging

import (
	"testing"

	"github.com/hance08/ledger/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.LogConfig
		level       zapcore.Level
		development bool
	}{
		{name: "production default level", cfg: config.LogConfig{Environment: "production"}, level: zapcore.InfoLevel},
		{name: "empty environment", cfg: config.LogConfig{Level: "warn"}, level: zapcore.WarnLevel},
		{name: "development", cfg: config.LogConfig{Environment: "development", Level: "debug"}, level: zapcore.DebugLevel, development: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildConfig(tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, "json", got.Encoding)
			assert.Equal(t, tt.level, got.Level.Level())
			assert.Equal(t, tt.development, got.Development)
		})
	}
}

func TestBuildConfigRejectsInvalidInput(t *testing.T) {
	_, err := buildConfig(config.LogConfig{Environment: "staging-ish"})
	assert.Error(t, err)

	_, err = buildConfig(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "error"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
