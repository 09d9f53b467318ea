package textscan

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/foundation/utils/stringx"
	"github.com/msto63/uvroot/internal/report"
)

const (
	originalPreview = 50
	resultPreview   = 60
)

// Options controls a Run
type Options struct {
	Samples      []string
	Pattern      string
	Replacement  string
	Expand       bool
	ValidateKind string
	ValidateWith []string
}

// Sample is one analyzed input text
type Sample struct {
	Index    int          `json:"index" yaml:"index"`
	Text     string       `json:"text" yaml:"text"`
	Analysis TextAnalysis `json:"analysis" yaml:"analysis"`
}

// Replacement records a pattern replacement on the first sample
type Replacement struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement"`
	Count       int    `json:"count" yaml:"count"`
	Result      string `json:"result" yaml:"result"`
}

// Validation records a batch validation
type Validation struct {
	Kind  string `json:"kind" yaml:"kind"`
	Valid int    `json:"valid" yaml:"valid"`
	Total int    `json:"total" yaml:"total"`
}

// Report is the outcome of a Run. Transforms and Replacement are nil when
// there are no samples.
type Report struct {
	Samples     []Sample     `json:"samples" yaml:"samples"`
	Summary     Summary      `json:"summary" yaml:"summary"`
	Original    string       `json:"original,omitempty" yaml:"original,omitempty"`
	Transforms  *Transforms  `json:"transforms,omitempty" yaml:"transforms,omitempty"`
	Replacement *Replacement `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	Validation  Validation   `json:"validation" yaml:"validation"`
}

// Run analyzes every sample, transforms and rewrites the first one and
// batch-validates opts.ValidateWith
func Run(opts Options) (*Report, error) {
	rep := &Report{Samples: make([]Sample, 0, len(opts.Samples))}

	analyses := make([]TextAnalysis, 0, len(opts.Samples))
	for i, text := range opts.Samples {
		a := AnalyzeText(text)
		analyses = append(analyses, a)
		rep.Samples = append(rep.Samples, Sample{Index: i + 1, Text: text, Analysis: a})
	}
	rep.Summary = Summarize(analyses)

	if len(opts.Samples) > 0 {
		first := opts.Samples[0]
		tr := Transform(first)
		rep.Original = first
		rep.Transforms = &tr

		replaceFn := ReplacePattern
		if opts.Expand {
			replaceFn = ExpandPattern
		}
		result, count, err := replaceFn(first, opts.Pattern, opts.Replacement)
		if err != nil {
			return nil, mdwerror.Wrap(err, "pattern replacement failed").
				WithOperation("textscan.Run").
				WithDetail("pattern", opts.Pattern)
		}
		rep.Replacement = &Replacement{
			Pattern:     opts.Pattern,
			Replacement: opts.Replacement,
			Count:       count,
			Result:      result,
		}
	}

	rep.Validation = Validation{
		Kind:  opts.ValidateKind,
		Valid: BatchValidate(opts.ValidateWith, opts.ValidateKind),
		Total: len(opts.ValidateWith),
	}
	return rep, nil
}

// WriteText prints the analysis in sections
func (r *Report) WriteText(p *report.Printer) {
	p.Section("Processing Text Data")
	for _, s := range r.Samples {
		a := s.Analysis
		p.Subsection("Text " + strconv.Itoa(s.Index))
		p.Line("Text analysis:")
		p.Line("  Words: %d (unique: %d)", a.Words, a.Unique)
		p.Line("  Numbers found: %s", fmtInts(a.Numbers))
		p.Line("  Emails found: %s", fmtQuoted(a.Emails))
		p.Line("  Sanitized length: %d", a.SanitizedLength)
	}

	p.Section("Summary")
	p.Line("Total words: %d", r.Summary.Words)
	p.Line("Total numbers extracted: %d", r.Summary.Numbers)
	p.Line("Total emails extracted: %d", r.Summary.Emails)

	if r.Transforms != nil {
		p.Section("Text Transformations")
		p.Line("Original: %s...", stringx.Clip(r.Original, originalPreview, ""))
		p.Line("Title case: %s...", stringx.Clip(r.Transforms.Title, originalPreview, ""))
	}

	if r.Replacement != nil {
		p.Section("Pattern Replacement")
		p.Line("Replaced %d occurrences of pattern", r.Replacement.Count)
		p.Line("Result: %s...", stringx.Clip(r.Replacement.Result, resultPreview, ""))
	}

	p.Section("Format Validation")
	p.Line("Validation: %d/%d valid %ss", r.Validation.Valid, r.Validation.Total, r.Validation.Kind)

	p.Done("Processed %d text samples", len(r.Samples))
}

func fmtInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// fmtQuoted prints ['a', 'b']
func fmtQuoted(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "'" + v + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
