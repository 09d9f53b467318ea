// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides descriptive statistics over numeric
//              slices, backed by gonum/stat.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Replaced decimal and currency types with descriptive
//                      statistics used by the analysis commands

// Package mathx provides descriptive statistics for the uvroot toolkit.
//
// Every function accepts any integer or float slice and works in float64.
// Empty input is reported through ErrEmptyInput or a false ok value rather
// than NaN.
//
//	sum, _ := mathx.Describe([]int{10, 20, 30})
//	sum.Mean       // 20
//	sum.Total      // 60
//	mathx.PopulationStdDev([]float64{1, 2, 3, 4})
package mathx
