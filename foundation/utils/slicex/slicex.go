// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic transformation, partitioning, sorting and aggregation
//              functions for Go slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Kept the helpers in use, added SortDesc

package slicex

import (
	"cmp"
	"slices"
)

// Number is satisfied by the built-in integer and float types
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element using the mapper function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce folds the slice into a single value
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// Partition splits the slice into elements that match the predicate and
// elements that don't. Both results preserve input order and are never nil.
func Partition[T any](slice []T, predicate func(T) bool) ([]T, []T) {
	matched := make([]T, 0, len(slice))
	rest := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

// Take returns a copy of at most the first n elements
func Take[T any](slice []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(slice) {
		n = len(slice)
	}
	return Clone(slice[:n])
}

// Clone returns a shallow copy; nil stays nil
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	return append(make([]T, 0, len(slice)), slice...)
}

// Reverse returns a reversed copy
func Reverse[T any](slice []T) []T {
	result := Clone(slice)
	slices.Reverse(result)
	return result
}

// ===============================
// Sorting
// ===============================

// Sort returns an ascending sorted copy
func Sort[T cmp.Ordered](slice []T) []T {
	result := Clone(slice)
	slices.Sort(result)
	return result
}

// SortDesc returns a descending sorted copy
func SortDesc[T cmp.Ordered](slice []T) []T {
	result := Clone(slice)
	slices.SortFunc(result, func(a, b T) int { return cmp.Compare(b, a) })
	return result
}

// ===============================
// Aggregation
// ===============================

// Sum returns the sum of all elements; zero for an empty slice
func Sum[T Number](slice []T) T {
	var total T
	for _, v := range slice {
		total += v
	}
	return total
}

// Min returns the smallest element; false for an empty slice
func Min[T cmp.Ordered](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}
	return slices.Min(slice), true
}

// Max returns the largest element; false for an empty slice
func Max[T cmp.Ordered](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}
	return slices.Max(slice), true
}
