package urlcheck

import (
	"github.com/msto63/uvroot/internal/report"
)

// Report is the outcome of Run
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Total   int      `json:"total" yaml:"total"`
	Valid   int      `json:"valid" yaml:"valid"`
}

// Run analyzes urls
func (c *Checker) Run(urls []string) *Report {
	results, _ := c.Analyze(urls)
	total, valid := Statistics(results)
	return &Report{Results: results, Total: total, Valid: valid}
}

// WriteText prints each URL, the statistics and the numbered report
func (r *Report) WriteText(p *report.Printer) {
	p.Line("Analyzing URLs...")
	for _, res := range r.Results {
		p.Line("URL: %s", res.Normalized)
		p.Line("  Domain: %s, Valid: %t", res.Domain, res.Valid)
		p.Line("  Encoded: %s", res.Encoded)
	}

	p.Rule(50)
	p.Blank()
	p.Line("Statistics:")
	p.Line("  Total URLs: %d", r.Total)
	p.Line("  Valid: %d", r.Valid)
	p.Line("  Invalid: %d", r.Total-r.Valid)

	p.Section("URL Analysis Report")
	for i, res := range r.Results {
		p.Line("%d. %s %s", i+1, p.Mark(res.Valid), res.Domain)
	}

	p.Done("Processed %d URLs (%d valid)", r.Total, r.Valid)
}

