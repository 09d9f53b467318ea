// Package matrix generates random matrices and reports their statistics.
package matrix

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/foundation/utils/mathx"
)

// Shape is a matrix's row and column count
type Shape struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// String formats the shape as "(rows, cols)"
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// ShapeOf returns the dimensions of m
func ShapeOf(m mat.Matrix) Shape {
	r, c := m.Dims()
	return Shape{Rows: r, Cols: c}
}

// Stats holds the mean, population standard deviation and sum of all
// elements of a matrix
type Stats struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std" yaml:"std"`
	Sum  float64 `json:"sum" yaml:"sum"`
}

// NewRand returns a deterministic generator for seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Random creates a rows×cols matrix with elements uniform in [0, 1)
func Random(rows, cols int, rng *rand.Rand) (*mat.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, mdwerror.Newf("matrix dimensions must be positive, got %dx%d", rows, cols).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("matrix.Random")
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(rows, cols, data), nil
}

// Multiply returns the matrix product a·b
func Multiply(a, b mat.Matrix) (*mat.Dense, error) {
	sa, sb := ShapeOf(a), ShapeOf(b)
	if sa.Cols != sb.Rows {
		return nil, mdwerror.Newf("cannot multiply %s by %s", sa, sb).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("matrix.Multiply")
	}
	var product mat.Dense
	product.Mul(a, b)
	return &product, nil
}

// Statistics computes the element-wise mean, population std and sum
func Statistics(m mat.Matrix) Stats {
	values := elements(m)
	if len(values) == 0 {
		return Stats{}
	}
	return Stats{
		Mean: stat.Mean(values, nil),
		Std:  mathx.PopulationStdDev(values),
		Sum:  mat.Sum(m),
	}
}

// Transpose returns a dense copy of mᵀ
func Transpose(m mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(m.T())
}

// Validate reports whether every matrix is non-nil and non-empty
func Validate(ms ...mat.Matrix) bool {
	for _, m := range ms {
		switch d := m.(type) {
		case nil:
			return false
		case *mat.Dense:
			if d == nil || d.IsEmpty() {
				return false
			}
		default:
			if r, c := m.Dims(); r == 0 || c == 0 {
				return false
			}
		}
	}
	return true
}

func elements(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
