package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/aiworkshop/grid"
)

// Glyphs used by Map on top of the cell bytes.
const (
	StartGlyph = '@'
	GoalGlyph  = 'X'
	PathGlyph  = '*'
)

// Map draws m one character per cell with path overlaid: the first point as
// StartGlyph, the last as GoalGlyph and the rest as PathGlyph. Path points
// are in scaled units; several may share a cell.
func Map(m *grid.Map, path []grid.Point, st Styles) string {
	overlay := make(map[[2]int]rune, len(path))
	for i, p := range path {
		col, row := m.CellOf(p)
		glyph := PathGlyph
		switch i {
		case 0:
			glyph = StartGlyph
		case len(path) - 1:
			glyph = GoalGlyph
		}
		if prev, ok := overlay[[2]int{col, row}]; ok && prev != PathGlyph {
			continue
		}
		overlay[[2]int{col, row}] = glyph
	}

	var sb strings.Builder
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Columns(); col++ {
			if g, ok := overlay[[2]int{col, row}]; ok {
				sb.WriteString(st.Path.Render(string(g)))
				continue
			}
			c := m.CellAt(col, row)
			sb.WriteString(cellStyle(c, st).Render(c.String()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellStyle(c grid.Cell, st Styles) lipgloss.Style {
	switch c {
	case grid.Wall:
		return st.Wall
	case grid.Tree:
		return st.Tree
	case grid.Grass:
		return st.Grass
	case grid.Sand:
		return st.Sand
	case grid.Water:
		return st.Water
	}
	return st.Floor
}
