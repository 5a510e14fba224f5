package console

import (
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/herald/internal/errors"
	"github.com/PolarWolf314/herald/internal/highlight"
	"github.com/PolarWolf314/herald/internal/identity"
	"github.com/PolarWolf314/herald/internal/subject"
	"github.com/PolarWolf314/herald/internal/tag"
	"github.com/PolarWolf314/herald/internal/ui"
)

// Printer writes log lines to Out.
type Printer struct {
	Out         io.Writer
	Identity    identity.Identity
	Mode        Mode
	Highlighter highlight.Highlighter
}

// NewPrinter returns a highlighting Printer.
func NewPrinter(out io.Writer, id identity.Identity) *Printer {
	return &Printer{
		Out:      out,
		Identity: id,
		Mode:     ModeHighlight,
	}
}

// Print emits values with default options.
func (p *Printer) Print(values ...any) (Result, error) {
	return p.emit(values, collect(nil))
}

// Emit renders values and writes the line to Out.
func (p *Printer) Emit(values []any, opts ...Option) (Result, error) {
	return p.emit(values, p.resolve(opts, 1))
}

// Render returns the line Emit would write, terminator included.
// The line is empty unless the Result is Written.
func (p *Printer) Render(values []any, opts ...Option) (string, Result) {
	return p.render(values, p.resolve(opts, 1))
}

// resolve collects opts and takes a caller subject from the source file
// skip frames above the caller of resolve.
func (p *Printer) resolve(opts []Option, skip int) options {
	o := collect(opts)
	if o.caller && o.subject.IsZero() && !p.Identity.Silent {
		o.subject, _ = subject.Caller(skip + 1)
	}
	return o
}

func (p *Printer) emit(values []any, o options) (Result, error) {
	line, result := p.render(values, o)
	if result != Written {
		return result, nil
	}
	if _, err := io.WriteString(p.Out, line); err != nil {
		return result, fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}
	return result, nil
}

func (p *Printer) render(values []any, o options) (string, Result) {
	if p.Identity.Silent {
		return "", Silenced
	}

	message := join(values, o.separator)
	if strings.TrimSpace(message) == "" {
		return "", Empty
	}

	var s subject.Subject
	if !o.subject.IsZero() {
		s = o.subject.Simplified()
	}
	header := tag.Render(s, p.Identity, o.parts)

	if p.Mode == ModeHighlight {
		message = p.Highlighter.Highlight(message)
	}
	message = ui.Paint(message, subject.MessageColor(s))

	return header + " " + message + o.terminator, Written
}

func join(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
