package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/kleene"
	"github.com/muesli/termenv"
)

// states in lattice order, for table rows and columns.
var states = []kleene.TriState{kleene.False, kleene.Unknown, kleene.True}

const colWidth = 8

// Renderer writes colored tristate output. The zero profile (termenv.Ascii)
// produces plain text, which tests and piped output rely on.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer detects the terminal's color profile.
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// NewPlainRenderer disables color entirely.
func NewPlainRenderer() *Renderer {
	return &Renderer{profile: termenv.Ascii}
}

// Paint renders a single value in its signal color: green for True, red
// for False, amber for Unknown.
func (r *Renderer) Paint(v kleene.TriState) string {
	return termenv.String(v.String()).Foreground(r.profile.Color(colorFor(v))).String()
}

// cell pads first, then colors, so the ANSI codes don't break alignment.
func (r *Renderer) cell(v kleene.TriState) string {
	s := fmt.Sprintf("%-*s", colWidth, v.String())
	return termenv.String(s).Foreground(r.profile.Color(colorFor(v))).String()
}

func colorFor(v kleene.TriState) string {
	switch v {
	case kleene.True:
		return "#4ade80"
	case kleene.False:
		return "#f87171"
	}
	return "#fbbf24"
}

// WriteTable writes the truth table for op: "not", "and", "or" or "xor".
func (r *Renderer) WriteTable(w io.Writer, op string) error {
	op = strings.ToLower(op)

	if op == "not" {
		fmt.Fprintf(w, "%-*s %s\n", colWidth, "x", "NOT x")
		for _, v := range states {
			fmt.Fprintf(w, "%s %s\n", r.cell(v), r.cell(v.Not()))
		}
		return nil
	}

	var apply func(a, b kleene.TriState) kleene.TriState
	switch op {
	case "and":
		apply = kleene.TriState.And
	case "or":
		apply = kleene.TriState.Or
	case "xor":
		apply = kleene.TriState.Xor
	default:
		return fmt.Errorf("unknown operator %q (want not, and, or or xor)", op)
	}

	fmt.Fprintf(w, "%-*s", colWidth, strings.ToUpper(op))
	for _, b := range states {
		fmt.Fprintf(w, " %-*s", colWidth, b)
	}
	fmt.Fprintln(w)

	for _, a := range states {
		fmt.Fprintf(w, "%-*s", colWidth, a)
		for _, b := range states {
			fmt.Fprintf(w, " %s", r.cell(apply(a, b)))
		}
		fmt.Fprintln(w)
	}
	return nil
}
