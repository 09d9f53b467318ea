package fsscan

import (
	"github.com/msto63/uvroot/internal/report"
)

// Options controls a Run. Empty Paths scans DefaultPaths, empty EnvVars
// checks DefaultEnvVars.
type Options struct {
	Paths       []string
	EnvVars     []string
	MaxValueLen int
}

// Report is the outcome of a Run. Totals is nil when no directory was
// scanned.
type Report struct {
	Runtime     Runtime  `json:"runtime" yaml:"runtime"`
	Environment []EnvVar `json:"environment" yaml:"environment"`
	Directories []Entry  `json:"directories" yaml:"directories"`
	Totals      *Totals  `json:"totals,omitempty" yaml:"totals,omitempty"`
}

// Run collects runtime, environment and directory information
func Run(opts Options) (*Report, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		var err error
		if paths, err = DefaultPaths(); err != nil {
			return nil, err
		}
	}
	vars := opts.EnvVars
	if len(vars) == 0 {
		vars = DefaultEnvVars
	}

	entries, err := Scan(paths)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Runtime:     RuntimeInfo(),
		Environment: Environment(vars, opts.MaxValueLen),
		Directories: entries,
	}
	if infos := Found(entries); len(infos) > 0 {
		t := Summarize(infos)
		rep.Totals = &t
	}
	return rep, nil
}

// WriteText prints the report sections
func (r *Report) WriteText(p *report.Printer) {
	p.Section("Go Environment")
	p.Line("%s on %s", r.Runtime.Version, r.Runtime.Platform())
	p.Line("  Executable: %s", r.Runtime.Executable)

	p.Section("Environment Variables")
	for _, v := range r.Environment {
		p.Line("  %s: %s", v.Name, v.Display)
	}

	p.Section("Directory Analysis")
	for _, e := range r.Directories {
		if e.Info == nil {
			p.Line("Directory not found: %s", e.Path)
			continue
		}
		p.Line("Directory: %s", e.Info.Path)
		p.Line("  Files: %d, Directories: %d", e.Info.Files, e.Info.Dirs)
		p.Line("  Total size: %s", FormatSize(e.Info.Size))
	}

	if r.Totals != nil {
		p.Section("Scan Summary")
		p.Line("Total Files: %d", r.Totals.Files)
		p.Line("Total Directories: %d", r.Totals.Dirs)
		p.Line("Total Size: %s", FormatSize(r.Totals.Size))
	}

	p.Done("Analysis complete")
}
