package minimax

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations.
var (
	ErrInvalidMove  = errors.New("minimax: invalid move")
	ErrGameOver     = errors.New("minimax: game is over")
	ErrInvalidBoard = errors.New("minimax: invalid board")
)

// Mark is the content of a square.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or ".".
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player. Empty has no opponent and is returned
// unchanged.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Outcome is the state of a game.
type Outcome int

const (
	Running Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Move addresses a square by row and column, both 0..2.
type Move struct {
	Row, Col int
}

func (m Move) String() string { return fmt.Sprintf("(%d,%d)", m.Row, m.Col) }

// Line is the pair of end squares of a winning three-in-a-row.
type Line struct {
	From, To Move
}

// MoveScore pairs a legal move with its minimax value.
type MoveScore struct {
	Move  Move
	Score int
}
