// Package log provides structured logging for the uvroot toolkit.
//
// Package: log
// Title: uvroot Structured Logging
// Description: A small structured logger with levels, persistent fields and
//              JSON or console output. Encoding and level filtering are done
//              by zap; this package keeps the Fields-based API used across
//              the toolkit and maps structured errors to log levels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Replaced the hand-written formatters with zap cores
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "uvroot",
//	})
//	logger.Info("scan finished", log.Fields{"paths": 2})
//
//	timer := logger.StartTimer("matrix.Run")
//	defer timer.Stop()
package log
