package ui

import (
	"fmt"
	"io"
)

// Progress prints sequential step progress with a counter display.
type Progress struct {
	out   io.Writer
	total int
	step  int
}

// NewProgress creates a progress printer for n steps.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Step advances the counter and prints the current progress line.
func (p *Progress) Step(label string) {
	p.step++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.step, p.total, label)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
