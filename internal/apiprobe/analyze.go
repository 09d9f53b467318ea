package apiprobe

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/report"
)

// Target is one URL together with the values measured for it
type Target struct {
	URL    string    `json:"url" yaml:"url"`
	Values []float64 `json:"values" yaml:"values"`
}

// Analysis is the combined probe and metrics result for one target
type Analysis struct {
	Index       int     `json:"index" yaml:"index"`
	URL         string  `json:"url" yaml:"url"`
	Status      string  `json:"status" yaml:"status"`
	StatusCode  int     `json:"status_code" yaml:"status_code"`
	ContentType string  `json:"content_type" yaml:"content_type"`
	Error       string  `json:"error,omitempty" yaml:"error,omitempty"`
	Metrics     Metrics `json:"metrics" yaml:"metrics"`
}

// Report holds every analysis plus the validation tally
type Report struct {
	Analyses []Analysis `json:"analyses" yaml:"analyses"`
	Valid    int        `json:"valid" yaml:"valid"`
	Total    int        `json:"total" yaml:"total"`
}

// Analyze probes all targets concurrently, bounded by the configured
// concurrency. Results keep input order. Metrics are validated before any
// request is sent.
func (p *Prober) Analyze(ctx context.Context, targets []Target) (*Report, error) {
	analyses := make([]Analysis, len(targets))
	for i, t := range targets {
		m, err := CalculateMetrics(t.Values...)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid target").
				WithOperation("apiprobe.Analyze").
				WithDetail("url", t.URL)
		}
		analyses[i] = Analysis{Index: i + 1, URL: t.URL, Metrics: m}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i := range targets {
		g.Go(func() error {
			probe := p.Fetch(gctx, targets[i].URL)
			a := &analyses[i]
			a.Status = probe.Status()
			a.StatusCode = probe.StatusCode
			a.ContentType = probe.ContentType
			if probe.Err != nil {
				a.Error = probe.Err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "probe run cancelled").
			WithCode(mdwerror.CodeTimeout).
			WithOperation("apiprobe.Analyze")
	}

	valid, total := Validate(analyses)
	return &Report{Analyses: analyses, Valid: valid, Total: total}, nil
}

// Validate counts analyses with StatusSuccess
func Validate(analyses []Analysis) (valid, total int) {
	for _, a := range analyses {
		if a.Status == StatusSuccess {
			valid++
		}
	}
	return valid, len(analyses)
}

// WriteText prints the per-target lines and the summary
func (r *Report) WriteText(p *report.Printer) {
	p.Line("Processing data and generating reports...")
	p.Blank()
	for _, a := range r.Analyses {
		ct := a.ContentType
		if ct == "" {
			ct = "none"
		}
		p.Line("API Status: %s, Content-Type: %s", a.Status, ct)
		p.Line("  Metrics - Avg: %.2f, Total: %s, Max: %s, Min: %s",
			a.Metrics.Average, num(a.Metrics.Total), num(a.Metrics.Max), num(a.Metrics.Min))
	}

	p.Section("Report Summary")
	for _, a := range r.Analyses {
		p.Line("Run %d: Status=%s, Avg=%.2f, Total=%s", a.Index, a.Status, a.Metrics.Average, num(a.Metrics.Total))
	}
	p.Blank()
	p.Line("Validation: %d/%d successful", r.Valid, r.Total)
	p.Done("Processed %d analyses", r.Total)
}

// num prints whole numbers without a fraction
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
