// ============================================================================
// uvroot - Analysis Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the CLI loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/uvroot/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, used as the logger name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: text)
	Format string

	// Output writer (default: stderr, so stdout stays the report)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns the configuration used when nothing is set
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       mdwlog.DefaultLevel().String(),
		Format:      "text",
	}
}

// NewLogger creates a Foundation logger. Unknown levels fall back to warn and
// unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format := mdwlog.FormatText
	if f, err := mdwlog.ParseFormat(cfg.Format); err == nil {
		format = f
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: level <= mdwlog.LevelDebug,
	})
}
