package simulate

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/foundation/utils/mathx"
	"github.com/msto63/uvroot/foundation/utils/slicex"
	"github.com/msto63/uvroot/internal/report"
)

const previewLen = 10

// Options controls a Run
type Options struct {
	Seed             int64
	Runs             int
	Size             int
	Min              int
	Max              int
	SamplePopulation int
	SampleSize       int
}

// DefaultOptions returns 3 runs of 20 numbers in [1, 100] and a sample of
// 10 out of 1..50
func DefaultOptions() Options {
	return Options{
		Seed:             DefaultSeed,
		Runs:             3,
		Size:             20,
		Min:              1,
		Max:              100,
		SamplePopulation: 50,
		SampleSize:       10,
	}
}

// Simulation is one generated dataset
type Simulation struct {
	Index   int   `json:"index" yaml:"index"`
	Numbers []int `json:"numbers" yaml:"numbers"`
	Stats   Stats `json:"stats" yaml:"stats"`
}

// Sampling is the result of SamplingTest
type Sampling struct {
	Population int   `json:"population" yaml:"population"`
	Original   []int `json:"original" yaml:"original"`
	Shuffled   []int `json:"shuffled" yaml:"shuffled"`
	Sample     []int `json:"sample" yaml:"sample"`
}

// Report is the outcome of a Run
type Report struct {
	Seed        int64        `json:"seed" yaml:"seed"`
	Simulations []Simulation `json:"simulations" yaml:"simulations"`
	AvgMean     float64      `json:"avg_mean" yaml:"avg_mean"`
	AvgTotal    float64      `json:"avg_total" yaml:"avg_total"`
	Comparison  *Comparison  `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Sampling    Sampling     `json:"sampling" yaml:"sampling"`
}

// RunSimulations generates n datasets of size numbers each
func (g *Generator) RunSimulations(n, size, min, max int) []Simulation {
	sims := make([]Simulation, 0, n)
	for i := 0; i < n; i++ {
		numbers := g.Numbers(size, min, max)
		stats, _ := Statistics(numbers)
		sims = append(sims, Simulation{Index: i + 1, Numbers: numbers, Stats: stats})
	}
	return sims
}

// Aggregate averages the means and totals of all simulations
func Aggregate(sims []Simulation) (avgMean, avgTotal float64, err error) {
	avgMean, err = mathx.AverageOf(sims, func(s Simulation) float64 { return s.Stats.Mean })
	if err != nil {
		return 0, 0, mdwerror.Wrap(err, "no simulations to aggregate").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("simulate.Aggregate")
	}
	avgTotal, _ = mathx.AverageOf(sims, func(s Simulation) float64 { return float64(s.Stats.Total) })
	return avgMean, avgTotal, nil
}

// SamplingTest shuffles and samples the list 1..population
func (g *Generator) SamplingTest(population, size int) Sampling {
	if population < 0 {
		population = 0
	}
	items := make([]int, population)
	for i := range items {
		items[i] = i + 1
	}
	return Sampling{
		Population: population,
		Original:   slicex.Take(items, previewLen),
		Shuffled:   slicex.Take(g.Shuffle(items), previewLen),
		Sample:     slicex.Sort(g.Sample(items, size)),
	}
}

// Run executes the simulations, compares two fresh datasets when more than
// one simulation ran and finishes with the sampling test
func Run(opts Options) (*Report, error) {
	if opts.Runs < 1 || opts.Size < 1 {
		return nil, mdwerror.New("runs and size must be at least 1").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("simulate.Run").
			WithDetail("runs", opts.Runs).
			WithDetail("size", opts.Size)
	}

	if !TotalFits(opts.Size, opts.Min, opts.Max) {
		return nil, mdwerror.New("bounds too wide: the total of size values would overflow").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("simulate.Run").
			WithDetail("min", opts.Min).
			WithDetail("max", opts.Max).
			WithDetail("size", opts.Size)
	}

	g := NewGenerator(opts.Seed)
	sims := g.RunSimulations(opts.Runs, opts.Size, opts.Min, opts.Max)
	avgMean, avgTotal, err := Aggregate(sims)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Seed:        g.Seed(),
		Simulations: sims,
		AvgMean:     avgMean,
		AvgTotal:    avgTotal,
	}
	if len(sims) >= 2 {
		a := g.Numbers(opts.Size, opts.Min, opts.Max)
		b := g.Numbers(opts.Size, opts.Min, opts.Max)
		comparison, err := Compare(a, b)
		if err != nil {
			return nil, err
		}
		rep.Comparison = &comparison
	}
	rep.Sampling = g.SamplingTest(opts.SamplePopulation, opts.SampleSize)
	return rep, nil
}

// WriteText prints simulations, summary, comparison and sampling
func (r *Report) WriteText(p *report.Printer) {
	p.Section("Running Simulations")
	for _, s := range r.Simulations {
		p.Subsection("Simulation " + strconv.Itoa(s.Index))
		p.Line("Generated %d random numbers", s.Stats.Count)
		p.Line("  Mean: %.2f", s.Stats.Mean)
		p.Line("  Range: [%d, %d]", s.Stats.Min, s.Stats.Max)
		p.Line("  Total: %d", s.Stats.Total)
	}

	p.Section("Simulation Summary")
	p.Line("Number of simulations: %d", len(r.Simulations))
	p.Line("Average mean: %.2f", r.AvgMean)
	p.Line("Average total: %.2f", r.AvgTotal)

	if r.Comparison != nil {
		p.Blank()
		p.Line("Dataset comparison:")
		p.Line("  Mean difference: %.2f", r.Comparison.MeanDiff)
		p.Line("  Range difference: %.2f", r.Comparison.RangeDiff)
	}

	p.Section("Sampling Tests")
	p.Line("Original list: %s... (%d items)", fmtInts(r.Sampling.Original), r.Sampling.Population)
	p.Line("Shuffled: %s...", fmtInts(r.Sampling.Shuffled))
	p.Line("Sample of %d: %s", len(r.Sampling.Sample), fmtInts(r.Sampling.Sample))

	p.Done("All tests complete - %d simulations run", len(r.Simulations))
}

func fmtInts(values []int) string {
	parts := slicex.Map(values, strconv.Itoa)
	return "[" + strings.Join(parts, ", ") + "]"
}
