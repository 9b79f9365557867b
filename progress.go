package lvt

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Progress prints the human readable status lines of a run.
type Progress struct {
	w       io.Writer
	printer *message.Printer
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{
		w:       w,
		printer: message.NewPrinter(language.BritishEnglish),
	}
}

// Linef prints a formatted line, adding the trailing newline.
func (p *Progress) Linef(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Progress) Step(n int, what string) {
	p.Linef("\nStep %d: %s...", n, what)
}

func (p *Progress) OK(format string, args ...interface{}) {
	p.Linef("✓ "+format, args...)
}

func (p *Progress) Warn(format string, args ...interface{}) {
	p.Linef("⚠ "+format, args...)
}

func (p *Progress) Fail(format string, args ...interface{}) {
	p.Linef("✗ "+format, args...)
}

func (p *Progress) Rule() {
	fmt.Fprintln(p.w, strings.Repeat("=", 60))
}

// Pounds prints an indented amount with thousands separators, e.g.
// "  Average land value: £1,234.56".
func (p *Progress) Pounds(label string, amount float64) {
	p.Linef("  %s: £%s", label, p.printer.Sprintf("%.2f", amount))
}
