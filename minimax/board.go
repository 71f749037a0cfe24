package minimax

import (
	"fmt"
	"strings"
)

// Board is a tic-tac-toe position together with the player to move.
// The zero value is not a valid game; use NewBoard.
type Board struct {
	cells [3][3]Mark
	next  Mark
}

// NewBoard returns an empty board with X to move.
func NewBoard() Board {
	return Board{next: X}
}

// ParseBoard reads three rows of three characters: 'X', 'O', and '.', ' '
// or '_' for an empty square. The player to move is derived from the counts,
// X moving first.
func ParseBoard(rows []string) (Board, error) {
	if len(rows) != 3 {
		return Board{}, fmt.Errorf("%w: want 3 rows, got %d", ErrInvalidBoard, len(rows))
	}
	var b Board
	var xs, os int
	for r, row := range rows {
		if len(row) != 3 {
			return Board{}, fmt.Errorf("%w: row %d has %d squares", ErrInvalidBoard, r, len(row))
		}
		for c := 0; c < 3; c++ {
			switch row[c] {
			case 'X', 'x':
				b.cells[r][c] = X
				xs++
			case 'O', 'o':
				b.cells[r][c] = O
				os++
			case '.', ' ', '_':
			default:
				return Board{}, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidBoard, row[c], r, c)
			}
		}
	}
	switch xs - os {
	case 0:
		b.next = X
	case 1:
		b.next = O
	default:
		return Board{}, fmt.Errorf("%w: %d X and %d O", ErrInvalidBoard, xs, os)
	}
	return b, nil
}

// Next returns the player to move.
func (b Board) Next() Mark { return b.next }

// At returns the mark on square m, Empty if m is off the board.
func (b Board) At(m Move) Mark {
	if !onBoard(m) {
		return Empty
	}
	return b.cells[m.Row][m.Col]
}

// Moves returns the empty squares in row-major order.
func (b Board) Moves() []Move {
	var out []Move
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b.cells[r][c] == Empty {
				out = append(out, Move{Row: r, Col: c})
			}
		}
	}
	return out
}

// Valid reports whether m is on the board and empty.
func (b Board) Valid(m Move) bool {
	return onBoard(m) && b.cells[m.Row][m.Col] == Empty
}

// Play returns the board after the player to move marks m.
func (b Board) Play(m Move) (Board, error) {
	if b.next == Empty {
		return b, fmt.Errorf("%w: no player to move", ErrInvalidBoard)
	}
	if o, _ := b.State(); o != Running {
		return b, fmt.Errorf("%w: %s", ErrGameOver, o)
	}
	if !b.Valid(m) {
		return b, fmt.Errorf("%w: %v", ErrInvalidMove, m)
	}
	b.cells[m.Row][m.Col] = b.next
	b.next = b.next.Opponent()
	return b, nil
}

// State reports the outcome. For a win, Line holds the end squares of the
// winning row, column or diagonal; otherwise it is the zero Line.
func (b Board) State() (Outcome, Line) {
	c := &b.cells
	for i := 0; i < 3; i++ {
		if c[i][0] != Empty && c[i][0] == c[i][1] && c[i][1] == c[i][2] {
			return winner(c[i][0]), Line{Move{i, 0}, Move{i, 2}}
		}
		if c[0][i] != Empty && c[0][i] == c[1][i] && c[1][i] == c[2][i] {
			return winner(c[0][i]), Line{Move{0, i}, Move{2, i}}
		}
	}
	if c[1][1] != Empty {
		if c[0][0] == c[1][1] && c[1][1] == c[2][2] {
			return winner(c[1][1]), Line{Move{0, 0}, Move{2, 2}}
		}
		if c[0][2] == c[1][1] && c[1][1] == c[2][0] {
			return winner(c[1][1]), Line{Move{0, 2}, Move{2, 0}}
		}
	}
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			if c[r][col] == Empty {
				return Running, Line{}
			}
		}
	}
	return Draw, Line{}
}

// String renders the board as three lines of "X", "O" and ".".
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < 3; c++ {
			sb.WriteString(b.cells[r][c].String())
		}
	}
	return sb.String()
}

func winner(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

func onBoard(m Move) bool {
	return m.Row >= 0 && m.Row < 3 && m.Col >= 0 && m.Col < 3
}
