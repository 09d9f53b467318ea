package dataset

import (
	"github.com/msto63/uvroot/foundation/utils/mathx"
	"github.com/msto63/uvroot/foundation/utils/slicex"
	"github.com/msto63/uvroot/internal/report"
)

// previewLen is how many sorted items a Structure shows
const previewLen = 5

// Structure describes a processor's contents relative to a threshold
type Structure struct {
	Total     int     `json:"total" yaml:"total"`
	Min       int     `json:"min" yaml:"min"`
	Max       int     `json:"max" yaml:"max"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Above     int     `json:"above" yaml:"above"`
	Below     int     `json:"below" yaml:"below"`
	Preview   []int   `json:"preview" yaml:"preview"`
}

// Stats holds total, average and upper median
type Stats struct {
	Total   int     `json:"total" yaml:"total"`
	Average float64 `json:"average" yaml:"average"`
	Median  int     `json:"median" yaml:"median"`
}

// Result is one processed dataset
type Result struct {
	Index     int       `json:"index" yaml:"index"`
	Added     int       `json:"added" yaml:"added"`
	Structure Structure `json:"structure" yaml:"structure"`
	Stats     Stats     `json:"stats" yaml:"stats"`
}

// Totals combines the results of all datasets
type Totals struct {
	TotalSum      int     `json:"total_sum" yaml:"total_sum"`
	AvgOfAverages float64 `json:"avg_of_averages" yaml:"avg_of_averages"`
}

// Report is the outcome of a pipeline run. Totals is nil when no dataset
// produced a result.
type Report struct {
	Datasets int      `json:"datasets" yaml:"datasets"`
	Results  []Result `json:"results" yaml:"results"`
	Skipped  []int    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Totals   *Totals  `json:"totals" yaml:"totals"`
}

// Analyze describes the processor's items; false when it is empty
func Analyze(p *Processor, threshold float64) (*Structure, bool) {
	data := p.Items()
	if len(data) == 0 {
		return nil, false
	}

	asc := p.Sorted()
	above, below := FilterData(data, threshold)
	return &Structure{
		Total:     len(data),
		Min:       asc[0],
		Max:       asc[len(asc)-1],
		Threshold: threshold,
		Above:     len(above),
		Below:     len(below),
		Preview:   slicex.Take(asc, previewLen),
	}, true
}

// Statistics returns total, average and the element at index n/2 of the
// sorted data; false when data is empty
func Statistics(data []int) (Stats, bool) {
	if len(data) == 0 {
		return Stats{}, false
	}
	total := slicex.Sum(data)
	median, _ := mathx.UpperMedian(data)
	return Stats{
		Total:   total,
		Average: float64(total) / float64(len(data)),
		Median:  median,
	}, true
}

// ProcessAll runs every dataset through its own processor using the
// dataset mean as threshold. Empty datasets are skipped and their 1-based
// index recorded.
func ProcessAll(datasets [][]int) (results []Result, skipped []int) {
	for i, ds := range datasets {
		p := NewProcessor()
		added := Populate(p, ds)

		if len(ds) == 0 {
			skipped = append(skipped, i+1)
			continue
		}
		mean, _ := mathx.Mean(ds)

		structure, ok := Analyze(p, mean)
		if !ok {
			skipped = append(skipped, i+1)
			continue
		}
		stats, _ := Statistics(ds)
		results = append(results, Result{
			Index:     i + 1,
			Added:     added,
			Structure: *structure,
			Stats:     stats,
		})
	}
	return results, skipped
}

// Aggregate sums totals and averages the averages; false when there
// are no results
func Aggregate(results []Result) (Totals, bool) {
	if len(results) == 0 {
		return Totals{}, false
	}
	sum := 0
	for _, r := range results {
		sum += r.Stats.Total
	}
	avg, _ := mathx.AverageOf(results, func(r Result) float64 { return r.Stats.Average })
	return Totals{TotalSum: sum, AvgOfAverages: avg}, true
}

// RunPipeline processes and aggregates all datasets
func RunPipeline(datasets [][]int) *Report {
	results, skipped := ProcessAll(datasets)
	rep := &Report{Datasets: len(datasets), Results: results, Skipped: skipped}
	if totals, ok := Aggregate(results); ok {
		rep.Totals = &totals
	}
	return rep
}

// WriteText prints the per-dataset blocks and the aggregate
func (r *Report) WriteText(p *report.Printer) {
	p.Line("Running data processing pipeline...")

	skipped := make(map[int]bool, len(r.Skipped))
	for _, i := range r.Skipped {
		skipped[i] = true
	}
	next := 0
	for i := 1; i <= r.Datasets; i++ {
		p.Subsection(fmtDataset(i))
		if skipped[i] || next >= len(r.Results) {
			p.Line("Added 0 items to processor")
			p.Line("No data to analyze")
			continue
		}
		res := r.Results[next]
		next++

		s := res.Structure
		p.Line("Added %d items to processor", res.Added)
		p.Line("Data analysis:")
		p.Line("  Total items: %d", s.Total)
		p.Line("  Min: %d, Max: %d", s.Min, s.Max)
		p.Line("  Above %s: %d, Below: %d", fmtThreshold(s.Threshold), s.Above, s.Below)
		p.Line("  Sorted (asc): %s...", fmtInts(s.Preview))
		p.Line("  Stats: total=%d, avg=%.2f, median=%d", res.Stats.Total, res.Stats.Average, res.Stats.Median)
	}

	if r.Totals == nil {
		p.Failed("Pipeline failed")
		return
	}
	p.Section("Aggregated Results")
	p.Line("Total sum across all datasets: %d", r.Totals.TotalSum)
	p.Line("Average of averages: %.2f", r.Totals.AvgOfAverages)
	p.Done("Pipeline complete - processed %d datasets", r.Datasets)
}
