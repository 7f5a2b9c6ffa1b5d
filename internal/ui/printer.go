// Package ui prints todos as plain, optionally coloured, text for
// non-interactive output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when colour escapes are written.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Printer writes themed output to w and errors to errW.
type Printer struct {
	w, errW io.Writer
	out     *termenv.Output
	theme   Theme
}

// NewPrinter builds a Printer. In ColorAuto mode colour is used only when
// w is a terminal.
func NewPrinter(w, errW io.Writer, theme string, mode ColorMode) *Printer {
	t := ThemeByName(theme)
	profile := termenv.Ascii
	switch {
	case t.Mono || mode == ColorNever:
	case mode == ColorAlways:
		profile = termenv.ANSI256
	case isTTY(w):
		profile = termenv.EnvColorProfile()
	}
	return &Printer{
		w:     w,
		errW:  errW,
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		theme: t,
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// C colours s with color; an empty color leaves s as is.
func (p *Printer) C(color, s string) string {
	if color == "" {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color(color)).String()
}

// Bold renders s in bold when colour is enabled.
func (p *Printer) Bold(s string) string {
	if p.out.Profile == termenv.Ascii {
		return s
	}
	return p.out.String(s).Bold().String()
}

// OK reports a success line on the output writer.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.w, p.C(p.theme.Success, p.theme.SymDone+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errW, p.C(p.theme.Error, p.theme.SymFail+" "+msg))
}

// Panel draws a framed box around lines using the current theme.
func (p *Printer) Panel(lines []string) {
	t := p.theme
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(p.w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(p.w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(p.w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
