// Package obslog is a small structured-logging helper for optional debug
// visibility; its one user in this module is editops, which logs each
// Hirschberg split point. It is nil (no-op) unless a caller installs a logger — the same "off by
// default" contract telemetry follows.
package obslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Encoding selects the zapcore encoder a Logger's sinks use.
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingConsole Encoding = "console"
)

// FileSink configures an optional rotated-file output, built on
// lumberjack.Logger.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Config configures New. Service is attached to every log line; Encoding
// selects JSON or human-readable console output; File, if set, adds a
// rotated-file sink alongside stderr.
type Config struct {
	Service  string
	Encoding Encoding
	File     *FileSink
}

// Logger wraps a zap.SugaredLogger. The zero value is not usable; use New.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger writing to stderr (and, if cfg.File is set, a
// rotated file) using cfg.Encoding.
func New(cfg Config) (*Logger, error) {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingConsole {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zap.DebugLevel),
	}
	if cfg.File != nil {
		lumber := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lumber), zap.DebugLevel))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.Fields(zap.String("service", cfg.Service)))
	return &Logger{sugar: zl.Sugar()}, nil
}

// Debugw logs a debug-level message with structured key/value pairs, the
// call editops uses for optional diagnostic visibility.
func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	if l == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.sugar.Sync()
}
