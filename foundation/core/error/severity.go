// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to choose the log level of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input or a skipped item; the run continues
	SeverityLow Severity = iota

	// SeverityMedium indicates a degraded result, e.g. an unreachable URL
	SeverityMedium

	// SeverityHigh indicates a failed command
	SeverityHigh

	// SeverityCritical indicates a programming error
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
