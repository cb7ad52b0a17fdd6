// Package logger builds the zap logger shared by the API and the CLI.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the zap preset and the overrides applied on top of it.
type Options struct {
	// Service and Env are attached to every entry.
	Service string
	Env     string
	JSON    bool
	Debug   bool
}

// New builds the process logger. Production starts from zap's production
// preset (sampling, stack traces on errors), anything else from the
// development preset.
func New(o Options) (*zap.Logger, error) {
	return newConfig(o).Build()
}

func newConfig(o Options) zap.Config {
	production := o.Env == "production"

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if production {
		cfg = zap.NewProductionConfig()
	}

	cfg.Encoding = "console"
	if o.JSON {
		cfg.Encoding = "json"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	level := zapcore.InfoLevel
	if o.Debug {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	cfg.InitialFields = map[string]any{"env": o.Env}
	if o.Service != "" {
		cfg.InitialFields["service"] = o.Service
	}
	return cfg
}
