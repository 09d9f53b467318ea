// ============================================================================
// uvroot - Analysis Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its commands
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Report schema version written into every envelope
	ReportSchema = "1"

	// History database schema version
	HistorySchema = "1"
)

// Set at build time with -ldflags "-X github.com/msto63/uvroot/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// String returns the human-readable version line
func String() string {
	return fmt.Sprintf("uvroot %s (commit %s, built %s, %s %s/%s)",
		Toolkit, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
