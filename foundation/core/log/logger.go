// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: persistent fields, immutable
//              With* clones and structured error logging on top of zap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: zap core replaces formatter/async worker

package log

import (
	"errors"
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
)

// Fields holds structured key/value pairs attached to a log entry
type Fields map[string]interface{}

// Field returns a single-entry Fields
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err returns Fields carrying an error message
func Err(err error) Fields {
	if err == nil {
		return nil
	}
	return Fields{"error": err.Error()}
}

// Merge returns a new Fields with other layered over f
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Logger represents a structured logger with contextual fields
type Logger struct {
	config Config
	z      *zap.Logger
	fields Fields
	mu     sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &Logger{
		config: config,
		z:      buildZap(config),
		fields: make(Fields),
	}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{
		config: Config{Level: LevelFatal, Output: io.Discard},
		z:      zap.NewNop(),
		fields: make(Fields),
	}
}

func buildZap(config Config) *zap.Logger {
	minLevel := config.Level.zapLevel()
	enabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= minLevel
	})
	core := zapcore.NewCore(newEncoder(config.Format), zapcore.AddSync(config.Output), enabler)

	opts := []zap.Option{zap.AddCallerSkip(2)}
	if config.EnableCaller {
		opts = append(opts, zap.AddCaller())
	}
	z := zap.New(core, opts...)
	if config.Name != "" {
		z = z.Named(config.Name)
	}
	return z
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cfg := l.config
	cfg.Level = level
	return &Logger{config: cfg, z: buildZap(cfg), fields: l.fields.Merge(nil)}
}

// WithName returns a copy with a sub-logger name, e.g. "uvroot.apiprobe"
func (l *Logger) WithName(name string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cfg := l.config
	if cfg.Name != "" {
		cfg.Name = cfg.Name + "." + name
	} else {
		cfg.Name = name
	}
	return &Logger{config: cfg, z: l.z.Named(name), fields: l.fields.Merge(nil)}
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &Logger{config: l.config, z: l.z, fields: l.fields.Merge(fields)}
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var structured *mdwerror.Error
	if !errors.As(err, &structured) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     structured.Code().String(),
		"error_severity": structured.Severity().String(),
	}
	if op := structured.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range structured.Details() {
		fields["error_"+k] = v
	}

	switch structured.Severity() {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), nil, fields)
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), nil, fields)
	default:
		l.log(LevelError, err.Error(), nil, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level.ShouldLog(l.config.Level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config.Level
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mu.RLock()
	z := l.z
	merged := l.fields
	l.mu.RUnlock()

	ce := z.Check(level.zapLevel(), message)
	if ce == nil {
		return
	}

	for _, set := range fields {
		merged = merged.Merge(set)
	}
	zf := toZapFields(merged)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	ce.Write(zf...)
}

// toZapFields sorts keys so console output is stable
func toZapFields(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
