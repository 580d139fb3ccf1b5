// Package logging builds the zap logger shared by the engine and the HTTP layer.
package logging

import (
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON zap logger configured for cfg.Environment.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	base, err := buildConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := base.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func buildConfig(cfg config.LogConfig) (zap.Config, error) {
	var base zap.Config
	switch strings.ToLower(strings.TrimSpace(cfg.Environment)) {
	case "", config.EnvironmentProduction:
		base = zap.NewProductionConfig()
	case config.EnvironmentDevelopment:
		base = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, fmt.Errorf("invalid log environment %q", cfg.Environment)
	}

	base.Encoding = "json"
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	base.DisableStacktrace = true

	if strings.TrimSpace(cfg.Level) != "" {
		var level zapcore.Level
		if err := level.Set(cfg.Level); err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		base.Level = zap.NewAtomicLevelAt(level)
	}

	return base, nil
}
