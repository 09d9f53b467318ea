package matrix

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/report"
)

func TestRandom(t *testing.T) {
	m, err := Random(3, 4, NewRand(1))
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if got := ShapeOf(m); got != (Shape{3, 4}) {
		t.Errorf("ShapeOf() = %v, want (3, 4)", got)
	}
	for _, v := range m.RawMatrix().Data {
		if v < 0 || v >= 1 {
			t.Errorf("element %v outside [0, 1)", v)
		}
	}

	again, _ := Random(3, 4, NewRand(1))
	if !mat.Equal(m, again) {
		t.Error("Random() with the same seed should be reproducible")
	}

	if _, err := Random(0, 2, NewRand(1)); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Random(0, 2) code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
}

func TestMultiply(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := Multiply(a, b)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	want := mat.NewDense(2, 2, []float64{58, 64, 139, 154})
	if !mat.Equal(got, want) {
		t.Errorf("Multiply() = %v, want %v", mat.Formatted(got), mat.Formatted(want))
	}

	_, err = Multiply(a, a)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Multiply(2x3, 2x3) code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
}

func TestStatistics(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	got := Statistics(m)

	if got.Mean != 2.5 || got.Sum != 10 {
		t.Errorf("Statistics() = %+v, want mean 2.5 sum 10", got)
	}
	if want := math.Sqrt(1.25); math.Abs(got.Std-want) > 1e-12 {
		t.Errorf("Std = %v, want %v (population)", got.Std, want)
	}
}

func TestTranspose(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr := Transpose(m)

	if ShapeOf(tr) != (Shape{3, 2}) {
		t.Fatalf("Transpose() shape = %v", ShapeOf(tr))
	}
	if tr.At(2, 0) != 3 || tr.At(0, 1) != 4 {
		t.Errorf("Transpose() = %v", mat.Formatted(tr))
	}
	tr.Set(0, 0, 99)
	if m.At(0, 0) != 1 {
		t.Error("Transpose() should copy, not alias")
	}
}

func TestValidate(t *testing.T) {
	var nilDense *mat.Dense
	tests := []struct {
		name string
		ms   []mat.Matrix
		want bool
	}{
		{"valid", []mat.Matrix{mat.NewDense(1, 1, nil), mat.NewDense(2, 2, nil)}, true},
		{"nil interface", []mat.Matrix{nil}, false},
		{"nil dense", []mat.Matrix{nilDense}, false},
		{"empty dense", []mat.Matrix{&mat.Dense{}}, false},
		{"none", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.ms...); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	rep, err := Run([]int{3, 5, 10}, 42)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Completed != 3 || len(rep.Analyses) != 3 || rep.Seed != 42 {
		t.Fatalf("Run() = %+v", rep)
	}
	for i, size := range []int{3, 5, 10} {
		a := rep.Analyses[i]
		if a.ProductShape != (Shape{size, size}) {
			t.Errorf("analysis %d shape = %v", i, a.ProductShape)
		}
		if a.First.Mean <= 0 || a.First.Mean >= 1 {
			t.Errorf("analysis %d mean = %v outside (0, 1)", i, a.First.Mean)
		}
		if math.Abs(a.First.Sum-a.First.Mean*float64(size*size)) > 1e-9 {
			t.Errorf("analysis %d sum/mean inconsistent: %+v", i, a.First)
		}
	}

	again, _ := Run([]int{3, 5, 10}, 42)
	if again.Analyses[2].Product != rep.Analyses[2].Product {
		t.Error("Run() with the same seed should be reproducible")
	}

	clock, err := Run([]int{2}, 0)
	if err != nil || clock.Seed == 0 {
		t.Errorf("Run(seed 0) should pick a clock seed, got %d (%v)", clock.Seed, err)
	}

	if _, err := Run([]int{-1}, 1); err == nil {
		t.Error("Run() with a negative size should fail")
	}
}

func TestReport_WriteText(t *testing.T) {
	rep := &Report{
		Seed: 7,
		Analyses: []Analysis{{
			Size: 3, Matrices: 2, Valid: true,
			First:        Stats{Mean: 0.5, Std: 0.25, Sum: 4.5},
			Second:       Stats{Mean: 0.4, Std: 0.2, Sum: 3.6},
			ProductShape: Shape{3, 3},
		}},
		Completed: 1,
	}

	var buf bytes.Buffer
	rep.WriteText(report.NewPrinter(&buf))
	out := buf.String()

	for _, line := range []string{
		"--- Analysis with 3x3 matrices ---",
		"Validation: 2 matrices, all valid: true",
		"Matrix stats: mean=0.500, std=0.250, sum=4.500",
		"Matrix stats: mean=0.400, std=0.200, sum=3.600",
		"Product shape: (3, 3)",
		"Means: matrix1=0.500, matrix2=0.400",
		"✓ Completed 1 analyses",
	} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}
