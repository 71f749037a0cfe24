package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aiworkshop/minimax"
)

// Board draws a tic-tac-toe position. Empty squares show their minimax score
// when scores has one, otherwise the matching rune of keys (row-major, nine
// runes) or a dot. The winning line, if any, is highlighted.
func Board(b minimax.Board, scores []minimax.MoveScore, keys string, st Styles) string {
	score := make(map[minimax.Move]int, len(scores))
	for _, ms := range scores {
		score[ms.Move] = ms.Score
	}
	keyRunes := []rune(keys)

	winning := make(map[minimax.Move]bool, 3)
	outcome, line := b.State()
	if outcome == minimax.XWins || outcome == minimax.OWins {
		dr, dc := sign(line.To.Row-line.From.Row), sign(line.To.Col-line.From.Col)
		for i := 0; i < 3; i++ {
			winning[minimax.Move{Row: line.From.Row + i*dr, Col: line.From.Col + i*dc}] = true
		}
	}

	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString(st.Muted.Render("───┼───┼───"))
			sb.WriteString("\n")
		}
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteString(st.Muted.Render("│"))
			}
			m := minimax.Move{Row: r, Col: c}
			sb.WriteString(square(b.At(m), m, score, keyRunes, winning[m], st))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func square(mark minimax.Mark, m minimax.Move, score map[minimax.Move]int, keys []rune, won bool, st Styles) string {
	if mark != minimax.Empty {
		text := " " + mark.String() + " "
		if won {
			return st.Accent.Render(text)
		}
		return st.Bold.Render(text)
	}
	if v, ok := score[m]; ok {
		text := fmt.Sprintf("%+d ", v)
		if v == 0 {
			text = " 0 "
		}
		switch {
		case v > 0:
			return st.Good.Render(text)
		case v < 0:
			return st.Bad.Render(text)
		}
		return st.Muted.Render(text)
	}
	if i := m.Row*3 + m.Col; i < len(keys) {
		return st.Muted.Render(" " + string(keys[i]) + " ")
	}
	return st.Muted.Render(" · ")
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
