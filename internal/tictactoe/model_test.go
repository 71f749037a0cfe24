package tictactoe_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aiworkshop/internal/tictactoe"
	"github.com/katalvlaran/aiworkshop/minimax"
)

func press(t *testing.T, m tictactoe.Model, keys ...string) (tictactoe.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(tictactoe.Model)
	}
	return m, cmd
}

func TestModel_HumanMoveGetsReply(t *testing.T) {
	m := tictactoe.New(minimax.NewBoard(), false)
	m, _ = press(t, m, "s")

	b := m.Board()
	require.Equal(t, minimax.X, b.At(minimax.Move{Row: 1, Col: 1}))
	require.Equal(t, minimax.X, b.Next(), "computer must have answered")
	require.Len(t, b.Moves(), 7)
	require.Equal(t, "Your move as X.", m.Status())
}

func TestModel_TakenSquare(t *testing.T) {
	m := tictactoe.New(minimax.NewBoard(), false)
	m, _ = press(t, m, "s", "s")
	require.Equal(t, "Square (1,1) is taken.", m.Status())
	require.Len(t, m.Board().Moves(), 7)
}

func TestModel_HumanWins(t *testing.T) {
	start, err := minimax.ParseBoard([]string{
		"OO.",
		"XX.",
		"X..",
	})
	require.NoError(t, err)
	// O to move: the human plays O and completes the top row.
	m := tictactoe.New(start, false)
	m, _ = press(t, m, "e")
	require.Equal(t, "You win! Press r to play again.", m.Status())

	m, _ = press(t, m, "c")
	require.Equal(t, "You win! Press r to play again.", m.Status())
}

func TestModel_ComputerWins(t *testing.T) {
	start, err := minimax.ParseBoard([]string{
		"XX.",
		"OO.",
		"...",
	})
	require.NoError(t, err)
	start, err = start.Play(minimax.Move{Row: 2, Col: 0})
	require.NoError(t, err)
	// O to move ignores the threat; X completes the top row.
	m := tictactoe.New(start, false)
	m, _ = press(t, m, "x")
	require.Equal(t, "Computer wins. Press r to play again.", m.Status())
	o, _ := m.Board().State()
	require.Equal(t, minimax.XWins, o)
}

func TestModel_Restart(t *testing.T) {
	m := tictactoe.New(minimax.NewBoard(), false)
	m, _ = press(t, m, "q", "r")
	require.Equal(t, minimax.NewBoard(), m.Board())
}

func TestModel_ScoresToggle(t *testing.T) {
	m := tictactoe.New(minimax.NewBoard(), false)
	require.Contains(t, m.View(), " q ")
	m, _ = press(t, m, "tab")
	require.Contains(t, m.View(), " 0 ")
	require.NotContains(t, m.View(), " q │")
}

func TestModel_Quit(t *testing.T) {
	m := tictactoe.New(minimax.NewBoard(), false)
	_, cmd := press(t, m, "esc")
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
