// Package report writes the generator's console output: informational lines
// on the standard stream, warnings on the error stream, and a summary table.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	infoPrefix  = "[i]"
	warnPrefix  = "[!]"
	errorPrefix = "ERROR:"
)

// Reporter prints prefixed progress lines.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// New creates a Reporter. Prefixes are coloured only when out is a terminal.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		color:  isTerminal(out),
	}
}

// Info prints an informational line to the standard stream.
func (r *Reporter) Info(format string, args ...any) {
	r.line(r.out, InfoStyle, infoPrefix, format, args...)
}

// Warn prints a warning line to the error stream.
func (r *Reporter) Warn(format string, args ...any) {
	r.line(r.errOut, WarnStyle, warnPrefix, format, args...)
}

// Error prints a fatal error line to the error stream.
func (r *Reporter) Error(format string, args ...any) {
	r.line(r.errOut, ErrorStyle, errorPrefix, format, args...)
}

// Print writes text to the standard stream as is.
func (r *Reporter) Print(text string) {
	fmt.Fprint(r.out, text)
}

// Subtle renders text in a muted style when colour is enabled.
func (r *Reporter) Subtle(text string) string {
	if !r.color {
		return text
	}
	return SubtleStyle.Render(text)
}

func (r *Reporter) line(w io.Writer, style lipgloss.Style, prefix, format string, args ...any) {
	if r.color {
		prefix = style.Render(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
