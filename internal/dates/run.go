package dates

import (
	"time"

	"github.com/msto63/uvroot/foundation/utils/timex"
	"github.com/msto63/uvroot/internal/report"
	"github.com/msto63/uvroot/pkg/core/logging"
)

// Options controls a Run
type Options struct {
	Now          time.Time
	Samples      []string
	SequenceDays int
}

// Report is the outcome of a Run. Range and the sequence are absent when
// no sample parsed.
type Report struct {
	Timestamp    Timestamp       `json:"timestamp" yaml:"timestamp"`
	Formatted    []Field         `json:"formatted" yaml:"formatted"`
	Dates        Processed       `json:"dates" yaml:"dates"`
	Range        *Range          `json:"range,omitempty" yaml:"range,omitempty"`
	Sequence     []SequenceEntry `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	SequenceMore int             `json:"sequence_more,omitempty" yaml:"sequence_more,omitempty"`
	BusinessDays int             `json:"business_days" yaml:"business_days"`
}

// Run formats opts.Now, analyzes the samples and builds a day sequence
// from the earliest sample
func Run(opts Options, logger *logging.Logger) *Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	rep := &Report{
		Timestamp: CurrentTimestamp(now),
		Formatted: FormatDatetime(now),
		Dates:     ProcessDates(opts.Samples, logger),
	}

	rng, ok := AnalyzeTimestamps(rep.Dates.Parsed)
	if !ok {
		return rep
	}
	rep.Range = &rng
	rep.Sequence, rep.SequenceMore = FormatSequence(Sequence(rng.Earliest, opts.SequenceDays))
	rep.BusinessDays = BusinessDays(rng.Earliest, rng.Latest)
	return rep
}

// WriteText prints the report sections
func (r *Report) WriteText(p *report.Printer) {
	p.Section("Current Timestamp")
	p.Line("ISO format: %s", r.Timestamp.ISO)
	p.Line("Unix timestamp: %d", r.Timestamp.Unix)

	p.Section("Datetime Formatting")
	for _, f := range r.Formatted {
		p.Line("  %s: %s", f.Key, f.Value)
	}

	p.Section("Date Processing")
	for _, s := range r.Dates.Invalid {
		p.Line("Invalid date format: %s", s)
	}
	if r.Range == nil {
		p.Failed("No valid dates to analyze")
		return
	}
	p.Line("Date range analysis:")
	p.Line("  Earliest: %s", timex.Format(r.Range.Earliest, "date"))
	p.Line("  Latest: %s", timex.Format(r.Range.Latest, "date"))
	p.Line("  Span: %s", r.Range.Span)

	p.Section("Date Sequence")
	p.Blank()
	p.Line("Date sequence:")
	for i, e := range r.Sequence {
		p.Line("  %d. %s (%s)", i+1, e.Date, e.Weekday)
	}
	if r.SequenceMore > 0 {
		p.Line("  ... and %d more", r.SequenceMore)
	}

	p.Blank()
	p.Line("Business days in range: %d", r.BusinessDays)
	p.Done("Date processing complete")
}
