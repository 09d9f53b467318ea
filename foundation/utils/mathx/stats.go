// File: stats.go
// Title: Descriptive Statistics
// Description: Mean, population standard deviation, upper median and a
//              combined Summary over numeric slices.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.3.0: Initial implementation on gonum/stat

package mathx

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned when a statistic is requested for no values
var ErrEmptyInput = errors.New("mathx: empty input")

// Number is satisfied by the built-in integer and float types
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Summary holds the basic descriptive statistics of a series
type Summary struct {
	Count int     `json:"count" yaml:"count"`
	Total float64 `json:"total" yaml:"total"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

// Range returns Max - Min
func (s Summary) Range() float64 {
	return s.Max - s.Min
}

// Floats converts any numeric slice to []float64
func Floats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Describe computes count, total, mean, min and max
func Describe[T Number](values []T) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}
	x := Floats(values)
	return Summary{
		Count: len(x),
		Total: floats.Sum(x),
		Mean:  stat.Mean(x, nil),
		Min:   floats.Min(x),
		Max:   floats.Max(x),
	}, nil
}

// Mean returns the arithmetic mean
func Mean[T Number](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Mean(Floats(values), nil), nil
}

// PopulationStdDev returns the standard deviation with divisor n. Returns 0
// for fewer than two values.
func PopulationStdDev[T Number](values []T) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Sqrt(stat.PopVariance(Floats(values), nil))
}

// UpperMedian returns the element at index n/2 of the sorted values. For
// even counts this is the upper of the two middle elements, not their mean.
func UpperMedian[T Number](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[len(sorted)/2], true
}

// AverageOf returns the mean of the values produced by fn for each item
func AverageOf[S any](items []S, fn func(S) float64) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmptyInput
	}
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total / float64(len(items)), nil
}
