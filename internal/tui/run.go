package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive program and blocks until the user quits.
func Run(opt Options, altScreen bool) error {
	var popts []tea.ProgramOption
	if altScreen {
		popts = append(popts, tea.WithAltScreen())
	}

	p := tea.NewProgram(New(opt), popts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		done, pending := fm.state.Stats()
		fm.logger.Info("session ended", "done", done, "pending", pending)
	}
	return nil
}
