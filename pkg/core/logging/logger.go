// ============================================================================
// uvroot - Analysis Toolkit
// ============================================================================
//
// Package:     logging
// Description: Key-value logger used by the analysis packages
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/uvroot/foundation/core/log"
)

// Logger wraps the Foundation logger with key-value logging methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// Wrap adapts an existing Foundation logger; nil yields a no-op logger
func Wrap(l *mdwlog.Logger, name string) *Logger {
	if l == nil {
		l = mdwlog.NewNop()
	}
	if name != "" {
		l = l.WithName(name)
	}
	return &Logger{Logger: l, name: name}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: mdwlog.NewNop()}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Named returns a child logger whose name is appended to this one
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger: l.Logger.WithName(name),
		name:   name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields. Non-string keys and a
// trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if err, isErr := keysAndValues[i+1].(error); isErr && err != nil {
			fields[key] = err.Error()
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
