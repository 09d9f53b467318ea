package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled console lines. Styles collapse to plain text when
// the writer is not a terminal.
type Printer struct {
	w       io.Writer
	section lipgloss.Style
	sub     lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
	err     error
}

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// NewPrinter creates a printer bound to w's color profile
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		section: r.NewStyle().Bold(true).Foreground(colorPrimary),
		sub:     r.NewStyle().Foreground(colorPrimary),
		ok:      r.NewStyle().Foreground(colorSecondary),
		fail:    r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// Line writes one formatted line
func (p *Printer) Line(format string, args ...interface{}) {
	p.write(fmt.Sprintf(format, args...))
}

// Blank writes an empty line
func (p *Printer) Blank() {
	p.write("")
}

// Section writes "=== title ===" preceded by a blank line
func (p *Printer) Section(title string) {
	p.Blank()
	p.write(p.section.Render("=== " + title + " ==="))
}

// Subsection writes "--- title ---" preceded by a blank line
func (p *Printer) Subsection(title string) {
	p.Blank()
	p.write(p.sub.Render("--- " + title + " ---"))
}

// Rule writes a horizontal rule of n '=' characters
func (p *Printer) Rule(n int) {
	p.Blank()
	b := make([]byte, n)
	for i := range b {
		b[i] = '='
	}
	p.write(p.muted.Render(string(b)))
}

// Mark returns a styled ✓ or ✗
func (p *Printer) Mark(ok bool) string {
	if ok {
		return p.ok.Render("✓")
	}
	return p.fail.Render("✗")
}

// Done writes a blank line and a "✓ ..." completion line
func (p *Printer) Done(format string, args ...interface{}) {
	p.Blank()
	p.write(p.Mark(true) + " " + fmt.Sprintf(format, args...))
}

// Failed writes a blank line and a "✗ ..." line
func (p *Printer) Failed(format string, args ...interface{}) {
	p.Blank()
	p.write(p.Mark(false) + " " + fmt.Sprintf(format, args...))
}

// Muted renders s in the muted style without writing it
func (p *Printer) Muted(s string) string {
	return p.muted.Render(s)
}

// Err returns the first write error
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}
