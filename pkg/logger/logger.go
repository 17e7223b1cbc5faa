// pkg/logger/logger.go

// Package logger owns the process-wide zap logger. Sentinel is an
// interactive tool, so structured logs go to stderr and stay out of the way
// of rendered reports on stdout.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// ParseLogLevel maps a LOG_LEVEL value onto a zap level, defaulting to warn
// so interactive runs stay quiet unless asked.
func ParseLogLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// Initialize builds the global logger. Safe to call more than once; the
// last call wins.
func Initialize() {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)
	log = zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(log)
}

// L returns the global logger, initializing a fallback if needed.
func L() *zap.Logger {
	if log == nil {
		Initialize()
	}
	return log
}

// Sync flushes buffered entries; call before exit. Sync on a terminal
// writer routinely errors, so the result is intentionally dropped.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
