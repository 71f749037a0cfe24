package minimax

import "fmt"

// Scores returns the minimax value of every legal move for the player to
// move, in row-major order. It returns nil when the game is over or b has
// no player to move (the zero Board).
func Scores(b Board) []MoveScore {
	if b.next == Empty {
		return nil
	}
	if o, _ := b.State(); o != Running {
		return nil
	}
	s := &scorer{me: b.next, cache: make(map[Board]int)}
	moves := b.Moves()
	out := make([]MoveScore, 0, len(moves))
	for _, m := range moves {
		child, _ := b.Play(m)
		out = append(out, MoveScore{Move: m, Score: s.value(child)})
	}
	return out
}

// Best returns the first move, in row-major order, with the highest score.
func Best(b Board) (Move, error) {
	if b.next == Empty {
		return Move{}, fmt.Errorf("%w: no player to move", ErrInvalidBoard)
	}
	scores := Scores(b)
	if len(scores) == 0 {
		o, _ := b.State()
		return Move{}, fmt.Errorf("%w: %s", ErrGameOver, o)
	}
	best := scores[0]
	for _, ms := range scores[1:] {
		if ms.Score > best.Score {
			best = ms
		}
	}
	return best.Move, nil
}

// scorer evaluates positions from the point of view of me.
type scorer struct {
	me    Mark
	cache map[Board]int
}

func (s *scorer) value(b Board) int {
	if v, ok := s.cache[b]; ok {
		return v
	}
	var v int
	switch o, _ := b.State(); o {
	case XWins, OWins:
		if (o == XWins) == (s.me == X) {
			v = 1
		} else {
			v = -1
		}
	case Draw:
		v = 0
	default:
		maximize := b.next == s.me
		if maximize {
			v = -2
		} else {
			v = 2
		}
		for _, m := range b.Moves() {
			child, _ := b.Play(m)
			cv := s.value(child)
			if maximize && cv > v || !maximize && cv < v {
				v = cv
			}
		}
	}
	s.cache[b] = v
	return v
}
