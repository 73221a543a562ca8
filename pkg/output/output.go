// Package output renders verification progress to the console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/zestic/verify-build/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, blue, bold, dim, reset = "", "", "", "", "", "", ""
	}
}

const detailIndent = "   "

// Reporter writes leveled, colored lines. It is not safe for concurrent use.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Success prints a green line prefixed with a check mark.
func (r *Reporter) Success(msg string) {
	r.line(green, "✅ "+msg)
}

// Error prints a red line prefixed with a cross.
func (r *Reporter) Error(msg string) {
	r.line(red, "❌ "+msg)
}

// Warning prints a yellow line prefixed with a warning sign.
func (r *Reporter) Warning(msg string) {
	r.line(yellow, "⚠️  "+msg)
}

// Info prints a blue informational line.
func (r *Reporter) Info(msg string) {
	r.line(blue, "ℹ️  "+msg)
}

// Header prints a bold section title preceded by a blank line.
func (r *Reporter) Header(msg string) {
	_, _ = fmt.Fprintf(r.w, "\n%s%s%s%s\n", blue, bold, msg, reset)
}

// Result prints a check result at the level matching its status,
// followed by its details.
func (r *Reporter) Result(res check.Result) {
	switch res.Status {
	case check.StatusOK:
		r.Success(res.Name)
	case check.StatusWarn:
		r.Warning(res.Name)
	default:
		r.Error(res.Name)
	}
	for _, d := range res.Details {
		for _, l := range strings.Split(strings.TrimRight(d, "\n"), "\n") {
			_, _ = fmt.Fprintf(r.w, "%s%s\n", detailIndent, formatLabel(l))
		}
	}
}

func (r *Reporter) line(color, msg string) {
	_, _ = fmt.Fprintf(r.w, "%s%s%s\n", color, msg, reset)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ": ")
	if !ok || strings.ContainsAny(label, " \t") {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
