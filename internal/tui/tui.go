package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"habitrack/internal/engine"
)

// Run starts the interactive tracker list
func Run(svc *engine.Service) error {
	p := tea.NewProgram(NewListModel(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
