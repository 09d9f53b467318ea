package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

func fmtDataset(i int) string {
	return fmt.Sprintf("Dataset %d", i)
}

// fmtThreshold prints 29.8 as "29.8" and 50 as "50.0"
func fmtThreshold(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// fmtInts prints a list as "[1, 2, 3]"
func fmtInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
