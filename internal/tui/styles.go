package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	help     lipgloss.Style
	border   lipgloss.Style
	input    lipgloss.Style

	boxChecked, boxUnchecked string
}

func newStyles(theme string) styles {
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("8")),

		boxChecked:   "☑",
		boxUnchecked: "☐",
	}

	switch strings.ToLower(theme) {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.border = s.border.BorderForeground(lipgloss.Color("13"))
		s.boxChecked, s.boxUnchecked = "◼", "◻"
	case "mono":
		plain := lipgloss.NewStyle()
		s.title = plain.Bold(true)
		s.success, s.pending, s.accent = plain, plain, plain
		s.border = plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
		s.input = plain.Border(lipgloss.NormalBorder(), false, false, true, false)
		s.boxChecked, s.boxUnchecked = "[x]", "[ ]"
	}
	return s
}
