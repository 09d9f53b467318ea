// File: level.go
// Title: Log Level Definitions
// Description: Log levels and their mapping onto zap levels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-17 v0.2.0: Added zap level mapping

package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelFatal logs and terminates the process
	LevelFatal
)

// zapTraceLevel sits one below zap's debug level
const zapTraceLevel = zapcore.DebugLevel - 1

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name; "warning" is accepted for warn
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// DefaultLevel returns the level used when none is configured. Warnings
// and errors stay visible; progress messages do not.
func DefaultLevel() Level {
	return LevelWarn
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelTrace:
		return zapTraceLevel
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func levelFromZap(z zapcore.Level) Level {
	switch {
	case z <= zapTraceLevel:
		return LevelTrace
	case z == zapcore.DebugLevel:
		return LevelDebug
	case z == zapcore.InfoLevel:
		return LevelInfo
	case z == zapcore.WarnLevel:
		return LevelWarn
	case z >= zapcore.FatalLevel:
		return LevelFatal
	default:
		return LevelError
	}
}

// encodeLevel writes our level names instead of zap's "Level(-2)" for trace
func encodeLevel(z zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelFromZap(z).String())
}
