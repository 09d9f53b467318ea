// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on Stop.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-17 v0.1.1: Dropped checkpoints

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Subsequent calls return 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": elapsed.Milliseconds(),
	})
	t.logger.log(t.level, "operation completed", nil, fields)
	return elapsed
}

// StopWithError stops the timer and logs at error level when err is non-nil
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": elapsed.Milliseconds(),
	})
	t.logger.log(LevelError, "operation failed", err, fields)
	return elapsed
}
