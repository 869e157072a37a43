// Package logging builds zap loggers from configuration.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eolymp/go-latex-preview/internal/config"
)

// New creates logger writing to stderr, verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (log *zap.Logger, err error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		err = errors.Wrapf(err, "invalid logging level: %s", cfg.Level)
		return nil, err
	}

	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	log, err = zc.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return nil, err
	}

	return log, err
}
