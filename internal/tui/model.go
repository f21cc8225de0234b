package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SixFiveMil/Chess/internal/game"
)

// Model is the Bubble Tea model for the console game: the live game,
// a command input line and a scrolling log.
type Model struct {
	g        *game.Game
	gameOver bool

	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel creates a model over a fresh or continued game.
func NewModel(g *game.Game) Model {
	ti := textinput.New()
	ti.Placeholder = "e2e4"
	ti.Prompt = "> "
	ti.CharLimit = 8
	ti.Width = 30
	ti.Focus()

	return Model{
		g:     g,
		input: ti,
		logLines: []string{
			"Welcome to Chess!",
			"Enter moves like e2e4 (e7e8q to underpromote).",
			"Commands: moves, undo, help, quit.",
		},
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.ToLower(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			m.execCommand(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	switch line {
	case "help":
		m.appendLog("Enter moves like e2e4 (from square to square).")
		m.appendLog("Append q/r/b/n to choose a promotion piece (e7e8n).")
		m.appendLog("moves - show all legal moves")
		m.appendLog("undo  - undo last move")
		m.appendLog("quit  - exit game")

	case "moves":
		moves := m.g.AllLegalMoves()
		if len(moves) == 0 {
			m.appendLog("No legal moves available.")
			return
		}
		m.appendLog(fmt.Sprintf("Legal moves for %s:", m.g.Turn()))
		var texts []string
		for _, mv := range moves {
			texts = append(texts, mv.Text())
		}
		for i := 0; i < len(texts); i += 8 {
			end := i + 8
			if end > len(texts) {
				end = len(texts)
			}
			m.appendLog("  " + strings.Join(texts[i:end], " "))
		}

	case "undo":
		if err := m.g.Undo(); err != nil {
			m.appendLog("No moves to undo.")
			return
		}
		m.gameOver = false
		m.appendLog("Move undone.")

	default:
		m.execMove(line)
	}
}

func (m *Model) execMove(line string) {
	if m.gameOver {
		m.appendLog("The game is over. undo to keep playing, quit to exit.")
		return
	}

	if _, err := m.g.AttemptMoveText(line); err != nil {
		m.appendLog(fmt.Sprintf("Invalid move: %v", err))
		return
	}

	switch st := m.g.Status(); st.Kind {
	case game.Checkmate:
		m.gameOver = true
		m.appendLog(fmt.Sprintf("Checkmate! %s wins!", st.Colour))
	case game.Stalemate:
		m.gameOver = true
		m.appendLog("Stalemate! Game is a draw.")
	case game.Check:
		m.appendLog(fmt.Sprintf("%s is in check.", st.Colour))
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	header := titleStyle.Render(fmt.Sprintf("chess  %s to move", m.g.Turn()))
	boardBox := boxStyle.Render(RenderBoard(m.g.Board()))

	logHeight := 8
	logStart := len(m.logLines) - logHeight
	if logStart < 0 {
		logStart = 0
	}
	logBox := boxStyle.Width(46).Render(strings.Join(m.logLines[logStart:], "\n"))

	return header + "\n" + boardBox + "\n" + logBox + "\n" + m.input.View() + "\n"
}
