package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/uvroot/internal/apiprobe"
	"github.com/msto63/uvroot/internal/dataset"
	"github.com/msto63/uvroot/internal/dates"
	"github.com/msto63/uvroot/internal/fsscan"
	"github.com/msto63/uvroot/internal/matrix"
	"github.com/msto63/uvroot/internal/report"
	"github.com/msto63/uvroot/internal/simulate"
	"github.com/msto63/uvroot/internal/textscan"
	"github.com/msto63/uvroot/internal/urlcheck"
)

// analysis is one runnable report producer. result returns an empty value
// of the report type so stored runs can be decoded for text output.
type analysis struct {
	name   string
	short  string
	run    func(ctx context.Context, s *session) (interface{}, error)
	result func() report.Texter
}

// analyses in the order "all" runs them
var analyses = []analysis{
	{"api", "Probe HTTP endpoints and compute value metrics", runAPI,
		func() report.Texter { return &apiprobe.Report{} }},
	{"matrix", "Random matrix statistics and products", runMatrix,
		func() report.Texter { return &matrix.Report{} }},
	{"datasets", "Sort, filter and aggregate integer datasets", runDatasets,
		func() report.Texter { return &dataset.Report{} }},
	{"text", "Extract numbers and emails, replace patterns, validate formats", runText,
		func() report.Texter { return &textscan.Report{} }},
	{"simulate", "Seeded random simulations and sampling", runSimulate,
		func() report.Texter { return &simulate.Report{} }},
	{"scan", "Runtime, environment and directory scan", runScan,
		func() report.Texter { return &fsscan.Report{} }},
	{"dates", "Timestamp parsing, spans and business days", runDates,
		func() report.Texter { return &dates.Report{} }},
	{"urls", "Domain extraction and IDNA encoding", runURLs,
		func() report.Texter { return &urlcheck.Report{} }},
}

// lookupAnalysis finds an analysis by command name
func lookupAnalysis(name string) (analysis, bool) {
	for _, a := range analyses {
		if a.name == name {
			return a, true
		}
	}
	return analysis{}, false
}

// exec runs the analysis and logs its duration at debug level
func (a analysis) exec(ctx context.Context, s *session) (interface{}, error) {
	timer := s.logger.StartTimer("analysis").WithField("analysis", a.name)
	data, err := a.run(ctx, s)
	timer.WithField("ok", err == nil).Stop()
	return data, err
}

func init() {
	for _, a := range analyses {
		rootCmd.AddCommand(newAnalysisCmd(a))
	}
}

func newAnalysisCmd(a analysis) *cobra.Command {
	return &cobra.Command{
		Use:   a.name,
		Short: a.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.exec(cmd.Context(), current)
			if err != nil {
				return err
			}
			return emit(cmd, current, a.name, data)
		},
	}
}

func runAPI(ctx context.Context, s *session) (interface{}, error) {
	prober := apiprobe.NewProber(apiprobe.Config{
		Timeout:     s.cfg.API.Timeout.Duration,
		Concurrency: s.cfg.API.Concurrency,
	}, s.logger.Named("api"))
	defer prober.Close()

	targets := make([]apiprobe.Target, len(s.cfg.API.Targets))
	for i, t := range s.cfg.API.Targets {
		targets[i] = apiprobe.Target{URL: t.URL, Values: t.Values}
	}
	return prober.Analyze(ctx, targets)
}

func runMatrix(ctx context.Context, s *session) (interface{}, error) {
	seed := s.cfg.Matrix.Seed
	if seedFlag != 0 {
		seed = seedFlag
	}
	return matrix.Run(s.cfg.Matrix.Sizes, seed)
}

func runDatasets(ctx context.Context, s *session) (interface{}, error) {
	return dataset.RunPipeline(s.cfg.Datasets.Values), nil
}

func runText(ctx context.Context, s *session) (interface{}, error) {
	t := s.cfg.Text
	return textscan.Run(textscan.Options{
		Samples:      t.Samples,
		Pattern:      t.Pattern,
		Replacement:  t.Replacement,
		Expand:       t.Expand,
		ValidateKind: t.ValidateKind,
		ValidateWith: t.ValidateWith,
	})
}

func runSimulate(ctx context.Context, s *session) (interface{}, error) {
	c := s.cfg.Simulation
	opts := simulate.Options{
		Seed:             c.Seed,
		Runs:             c.Runs,
		Size:             c.Size,
		Min:              c.Min,
		Max:              c.Max,
		SamplePopulation: c.SamplePopulation,
		SampleSize:       c.SampleSize,
	}
	if seedFlag != 0 {
		opts.Seed = seedFlag
	}
	return simulate.Run(opts)
}

func runScan(ctx context.Context, s *session) (interface{}, error) {
	return fsscan.Run(fsscan.Options{
		Paths:       s.cfg.Scan.Paths,
		EnvVars:     s.cfg.Scan.EnvVars,
		MaxValueLen: s.cfg.Scan.MaxValueLen,
	})
}

func runDates(ctx context.Context, s *session) (interface{}, error) {
	return dates.Run(dates.Options{
		Samples:      s.cfg.Dates.Samples,
		SequenceDays: s.cfg.Dates.SequenceDays,
	}, s.logger.Named("dates")), nil
}

func runURLs(ctx context.Context, s *session) (interface{}, error) {
	return urlcheck.NewChecker(s.logger.Named("urls")).Run(s.cfg.URLs.List), nil
}
