package slicex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterAndMap(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	if diff := cmp.Diff([]int{2, 4}, evens); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	if Filter[int](nil, nil) != nil {
		t.Error("Filter(nil) should be nil")
	}

	doubled := Map([]int{1, 2}, func(v int) float64 { return float64(v) * 2 })
	if diff := cmp.Diff([]float64{2, 4}, doubled); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce(t *testing.T) {
	got := Reduce([]int{1, 2, 3}, "", func(acc string, v int) string {
		return acc + string(rune('a'+v-1))
	})
	if got != "abc" {
		t.Errorf("Reduce() = %q, want %q", got, "abc")
	}
}

func TestPartition(t *testing.T) {
	values := []int{10, 25, 30, 15, 40}
	above, below := Partition(values, func(v int) bool { return v > 25 })

	if diff := cmp.Diff([]int{30, 40}, above); diff != "" {
		t.Errorf("above mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 25, 15}, below); diff != "" {
		t.Errorf("below mismatch (-want +got):\n%s", diff)
	}

	a, b := Partition([]int{}, func(int) bool { return true })
	if a == nil || b == nil {
		t.Error("Partition() should return non-nil slices")
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  []int
	}{
		{"fewer", []int{1, 2, 3}, 5, []int{1, 2, 3}},
		{"exact", []int{1, 2, 3, 4, 5, 6}, 5, []int{1, 2, 3, 4, 5}},
		{"zero", []int{1}, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Take(tt.input, tt.n)); diff != "" {
				t.Errorf("Take() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTake_DoesNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	got := Take(src, 2)
	got[0] = 99
	if src[0] != 1 {
		t.Error("Take() result aliases input")
	}
}

func TestSortDoesNotMutate(t *testing.T) {
	src := []int{3, 1, 2}

	if diff := cmp.Diff([]int{1, 2, 3}, Sort(src)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, SortDesc(src)); diff != "" {
		t.Errorf("SortDesc() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 1, 3}, Reverse(src)); diff != "" {
		t.Errorf("Reverse() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 1, 2}, src); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestAggregation(t *testing.T) {
	values := []float64{10, 20, 30}

	if got := Sum(values); got != 60 {
		t.Errorf("Sum() = %v, want 60", got)
	}
	if got, ok := Min(values); !ok || got != 10 {
		t.Errorf("Min() = %v, %v", got, ok)
	}
	if got, ok := Max(values); !ok || got != 30 {
		t.Errorf("Max() = %v, %v", got, ok)
	}
	if _, ok := Min([]int{}); ok {
		t.Error("Min(empty) should report false")
	}
	if got := Sum([]int{}); got != 0 {
		t.Errorf("Sum(empty) = %d", got)
	}
}
