// Package filex provides file and directory helpers for the uvroot toolkit.
//
// Package: filex
// Title: File Utilities
// Description: Existence checks, single-level directory statistics and
//              human readable byte sizes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-17 v0.2.0: Reduced to scan helpers; FormatSize uses two decimals
//                      for every unit
//
// Usage:
//
//	stats, err := filex.ScanDir(".")
//	fmt.Println(stats.Files, filex.FormatSize(stats.Size))
package filex
