// Package tictactoe is the interactive terminal game for the minimax exercise.
//
// The human plays the side to move with the keys q w e / a s d / z x c laid
// out like the board; the computer answers with minimax.Best. Toggling scores shows
// the minimax value of every free square for the player to move.
package tictactoe

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/aiworkshop/internal/render"
	"github.com/katalvlaran/aiworkshop/minimax"
)

// squareKeys lists the key of each square in row-major order.
const squareKeys = "qweasdzxc"

// KeyMap holds the game bindings.
type KeyMap struct {
	Play    key.Binding
	Scores  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the bindings described in the package doc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys(strings.Split(squareKeys, "")...),
			key.WithHelp("qwe/asd/zxc", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Scores, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the bubbletea model of one game session.
type Model struct {
	board      minimax.Board
	start      minimax.Board
	human      minimax.Mark
	showScores bool
	status     string

	keys   KeyMap
	help   help.Model
	styles render.Styles
}

// New starts a session from start with the human playing the side to move.
func New(start minimax.Board, showScores bool) Model {
	m := Model{
		start:      start,
		human:      start.Next(),
		showScores: showScores,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     render.DefaultStyles(),
	}
	m.reset()
	return m
}

// Board returns the current position.
func (m Model) Board() minimax.Board { return m.board }

// Status returns the line shown under the board.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Restart):
		m.reset()
	case key.Matches(km, m.keys.Scores):
		m.showScores = !m.showScores
	case key.Matches(km, m.keys.Play):
		i := strings.Index(squareKeys, km.String())
		m.play(minimax.Move{Row: i / 3, Col: i % 3})
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var scores []minimax.MoveScore
	if m.showScores {
		scores = minimax.Scores(m.board)
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Tic-tac-toe"))
	sb.WriteString("\n\n")
	sb.WriteString(render.Board(m.board, scores, squareKeys, m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.status)
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

func (m *Model) reset() {
	m.board = m.start
	m.status = "Your move as " + m.human.String() + "."
	m.reply()
}

func (m *Model) play(mv minimax.Move) {
	if o, _ := m.board.State(); o != minimax.Running {
		m.status = m.outcome(o) + " Press r to play again."
		return
	}
	next, err := m.board.Play(mv)
	if err != nil {
		m.status = "Square " + mv.String() + " is taken."
		return
	}
	m.board = next
	m.reply()
}

// reply lets the computer move while it is its turn and updates the status.
func (m *Model) reply() {
	for {
		o, _ := m.board.State()
		if o != minimax.Running {
			m.status = m.outcome(o) + " Press r to play again."
			return
		}
		if m.board.Next() == m.human {
			m.status = "Your move as " + m.human.String() + "."
			return
		}
		mv, err := minimax.Best(m.board)
		if err != nil {
			return
		}
		m.board, _ = m.board.Play(mv)
	}
}

func (m Model) outcome(o minimax.Outcome) string {
	switch {
	case o == minimax.Draw:
		return "Draw."
	case o == minimax.XWins && m.human == minimax.X, o == minimax.OWins && m.human == minimax.O:
		return "You win!"
	}
	return "Computer wins."
}
