// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides Unicode-safe string helpers used by the
//              uvroot text and report commands.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Letter-run title casing, whitespace normalization, Clip

// Package stringx provides extended string operations for the uvroot toolkit.
//
// All functions operate on runes, never on bytes, so multi-byte characters
// are never split.
//
// Basic usage:
//
//	stringx.ToTitleCase("hello WORLD")           // "Hello World"
//	stringx.NormalizeSpace("  a \n\t b ")        // "a b"
//	stringx.Clip(strings.Repeat("x", 60), 50, "...") // 50 x's followed by "..."
package stringx
