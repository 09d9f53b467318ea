// File: format.go
// Title: Log Output Formats
// Description: Output formats and the zap encoders behind them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: JSON, text, console and logfmt formatters
// - 2026-10-17 v0.2.0: JSON and text backed by zap encoders

package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Format represents the log output format
type Format int

const (
	// FormatJSON emits one JSON object per line
	FormatJSON Format = iota
	// FormatText emits tab separated console lines
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses "json", "text" or "console"
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return FormatJSON, nil
	case "text", "console":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format %q", format)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newEncoder(f Format) zapcore.Encoder {
	if f == FormatText {
		return zapcore.NewConsoleEncoder(encoderConfig())
	}
	return zapcore.NewJSONEncoder(encoderConfig())
}
