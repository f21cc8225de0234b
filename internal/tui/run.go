package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SixFiveMil/Chess/internal/game"
)

// Run starts the interactive game loop and blocks until the user quits.
func Run(g *game.Game) error {
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
