// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by the analysis commands.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Reduced to the toolkit's code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Network
	CodeNetworkError Code = "NETWORK_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// DefaultSeverity returns the severity assigned when a code is set without
// an explicit severity.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValidationFailed, CodeValueOutOfRange, CodeNotFound:
		return SeverityLow
	case CodeDatabaseError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
