// Package logger builds the zap logger shared by the workshop commands.
package logger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel reports an unparseable level string.
var ErrBadLevel = errors.New("logger: bad level")

// New returns a console logger writing to stderr at level.
// development selects zap's development preset (caller, stack traces on warn).
func New(level string, development bool) (*zap.Logger, error) {
	config, err := Config(level, development)
	if err != nil {
		return nil, err
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Config returns the zap configuration New builds. The production preset
// keeps stack traces off: exercise failures are user errors.
func Config(level string, development bool) (zap.Config, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: %q", ErrBadLevel, level)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = !development
	return config, nil
}

// ForRun tags every entry of a single exercise run.
func ForRun(l *zap.Logger, exercise, runID string) *zap.Logger {
	return l.With(zap.String("exercise", exercise), zap.String("run_id", runID))
}
