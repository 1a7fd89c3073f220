// Package logging builds the zap logger shared by the server and CLI.
package logging

import (
	"github.com/cockroachdb/errors"
	"github.com/damacus/iron-files/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConfig returns a zap.Config for the given log settings.
func NewConfig(cfg config.LogConfig) (zap.Config, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, errors.Wrapf(err, "parse log level %q", cfg.Level)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stdout"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc, nil
}

// New builds a logger for the given settings.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zc, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}
