// Package validationx provides format validation for the uvroot toolkit.
//
// Package: validationx
// Title: Format Validation Utilities
// Description: Named format checks (email, phone, url, number) built on a
//              concurrency-safe cache of compiled regular expressions that
//              also serves caller-supplied patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-17 v0.2.0: Replaced validator chains with named format checks,
//                      exported the pattern cache
//
// Usage:
//
//	validationx.IsValidEmail("admin@test.org")        // true
//	ok, known := validationx.Check("phone", "+14155552671")
//	re, err := validationx.CompilePattern(`\d+`)
package validationx
