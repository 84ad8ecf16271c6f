// Package minigame implements Jelly Bean Match, the match-3 game that earns rocket parts.
package minigame

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var styles = struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
	win      lipgloss.Style
	lose     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#A855F7")).
		Padding(0, 1),
	cursor: lipgloss.NewStyle().
		Background(lipgloss.Color("#FF99CC")),
	selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#FFD700")),
	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),
	win: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#22C55E")),
	lose: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#EF4444")),
}

// Model is the Bubble Tea model for one round of Jelly Bean Match
type Model struct {
	Game   *Game
	Cursor Cell
	// Done is set once the player leaves the game, won or not
	Done bool
	// Standalone quits the program when done instead of handing back to a parent
	Standalone bool
}

// NewModel returns a model at the start screen
func NewModel() Model {
	return Model{Game: NewGame()}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m.finish()
	}

	switch m.Game.Phase {
	case PhaseIdle:
		if key.String() == "enter" || key.String() == " " {
			m.Game.Start()
		}
	case PhaseEnded:
		if key.String() == "enter" || key.String() == " " {
			return m.finish()
		}
	case PhasePlaying:
		switch key.String() {
		case "up", "k":
			if m.Cursor.Row > 0 {
				m.Cursor.Row--
			}
		case "down", "j":
			if m.Cursor.Row < GridSize-1 {
				m.Cursor.Row++
			}
		case "left", "h":
			if m.Cursor.Col > 0 {
				m.Cursor.Col--
			}
		case "right", "l":
			if m.Cursor.Col < GridSize-1 {
				m.Cursor.Col++
			}
		case "enter", " ":
			m.Game.Select(m.Cursor)
		}
	}
	return m, nil
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.Done = true
	if m.Standalone {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	title := styles.title.Render("🏆 Jelly Bean Match")

	switch m.Game.Phase {
	case PhaseIdle:
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			"🍬 Match 3 or more jelly beans!",
			fmt.Sprintf("Score %d points in %d moves to win a rocket part.", WinScore, StartingMoves),
			"",
			styles.help.Render("enter to start • esc to leave"),
		)
	case PhaseEnded:
		result := styles.lose.Render(fmt.Sprintf("Out of moves! Score: %d", m.Game.Score))
		if m.Game.Won() {
			result = styles.win.Render(fmt.Sprintf("🎉 You win! Score: %d (+1 🚀 part)", m.Game.Score))
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			m.renderGrid(),
			"",
			result,
			"",
			styles.help.Render("enter to continue"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		fmt.Sprintf("Score: %-3d  Moves: %d", m.Game.Score, m.Game.Moves),
		"",
		m.renderGrid(),
		"",
		styles.help.Render("arrows to move • enter to pick/swap • esc to leave"),
	)
}

func (m Model) renderGrid() string {
	var b strings.Builder
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			c := Cell{Row: row, Col: col}
			cell := " " + m.Game.Grid[row][col] + " "
			switch {
			case m.Game.Selected != nil && *m.Game.Selected == c:
				cell = styles.selected.Render(cell)
			case m.Game.Phase == PhasePlaying && m.Cursor == c:
				cell = styles.cursor.Render(cell)
			}
			b.WriteString(cell)
		}
		if row < GridSize-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// Run plays one round in its own program and reports whether the player won
func Run() (bool, error) {
	m := NewModel()
	m.Standalone = true
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("run minigame: %w", err)
	}
	fm := final.(Model)
	return fm.Game.Phase == PhaseEnded && fm.Game.Won(), nil
}
