// Package slicex provides generic slice helpers for the uvroot toolkit.
//
// Package: slicex
// Title: Generic Slice Utilities
// Description: Functional-style transformation, partitioning, sorting and
//              aggregation helpers. Every function returns a new slice and
//              never mutates its input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Trimmed to the helpers the analysis commands use,
//                      added SortDesc
//
// Usage:
//
//	above, below := slicex.Partition(values, func(v int) bool { return v > 30 })
//	top := slicex.Take(slicex.Sort(values), 5)
//	total := slicex.Sum(values)
package slicex
