package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log output formats accepted by --log-format.
const (
	formatConsole = "console"
	formatJSON    = "json"
)

// newLogger builds a zap logger writing to w at the given level.
// format is formatConsole (human-readable) or formatJSON.
func newLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var enc zapcore.Encoder
	switch format {
	case formatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	case formatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("log format %q: want %q or %q", format, formatConsole, formatJSON)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	return zap.New(core).Named("algokit"), nil
}
