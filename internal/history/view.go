package history

import (
	"time"

	"github.com/msto63/uvroot/internal/report"
)

// Listing is the renderable result of a history listing
type Listing struct {
	Entries []*Entry `json:"entries" yaml:"entries"`
}

// WriteText prints one line per run, newest first
func (l *Listing) WriteText(p *report.Printer) {
	p.Section("Run History")
	if len(l.Entries) == 0 {
		p.Line("%s", p.Muted("No runs recorded"))
		return
	}
	for _, e := range l.Entries {
		p.Line("%s  %s  %s", e.RunID, e.CreatedAt.Format(time.RFC3339), e.Command)
	}
	p.Done("%d runs", len(l.Entries))
}

// PruneResult is the renderable result of a prune
type PruneResult struct {
	OlderThan string `json:"older_than" yaml:"older_than"`
	Removed   int64  `json:"removed" yaml:"removed"`
}

// WriteText prints the number of removed runs
func (r *PruneResult) WriteText(p *report.Printer) {
	p.Done("Pruned %d runs older than %s", r.Removed, r.OlderThan)
}
