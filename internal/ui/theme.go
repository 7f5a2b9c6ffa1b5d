package ui

import (
	"fmt"
	"math"
	"strings"
)

// Theme bundles palette + symbols + box borders. Colours are termenv
// colour strings; empty means "no colour".
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymPending, SymFail                  string
	BarFull, BarEmpty                             string
	Mono                                          bool
}

// ThemeByName returns the named theme; unknown names get "classic".
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title: "13", Muted: "8", Accent: "14",
			Success: "2", Error: "1", Pending: "11",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•", SymFail: "✖",
			BarFull: "▰", BarEmpty: "▱",
		}
	case "mono":
		return Theme{
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymPending: "-", SymFail: "!",
			BarFull: "#", BarEmpty: "-",
			Mono: true,
		}
	default: // classic
		return Theme{
			Title: "", Muted: "8", Accent: "4",
			Success: "2", Error: "1", Pending: "3",
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•", SymFail: "✖",
			BarFull: "█", BarEmpty: "░",
		}
	}
}

// Progress draws done out of total as a bar of width cells, rounded to the
// nearest cell, followed by the percentage. An empty list reads 0%.
func (t Theme) Progress(done, total, width int) string {
	width = max(width, 5)
	ratio := 0.0
	if total > 0 {
		ratio = float64(min(max(done, 0), total)) / float64(total)
	}
	cells := int(math.Round(ratio * float64(width)))
	bar := strings.Repeat(t.BarFull, cells) + strings.Repeat(t.BarEmpty, width-cells)
	return fmt.Sprintf("%s %3.0f%%", bar, ratio*100)
}
