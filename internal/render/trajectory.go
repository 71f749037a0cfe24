package render

import (
	"math"
	"strings"

	"github.com/katalvlaran/aiworkshop/trajectory"
)

// Trajectory draws z over screen s on a cols x rows canvas: sky as blanks,
// grass as commas, legs as dots, turning points as 'o' and the launch point
// as StartGlyph. Anything beyond the screen edge is clipped.
func Trajectory(s trajectory.Screen, z trajectory.ZigZag, cols, rows int, st Styles) string {
	cols, rows = max(cols, 1), max(rows, 1)
	horizon := int(math.Ceil(float64(s.Height-s.GrassHeight) * float64(rows) / float64(s.Height)))

	canvas := make([][]rune, rows)
	for r := range canvas {
		fill := ' '
		if r >= horizon {
			fill = ','
		}
		canvas[r] = []rune(strings.Repeat(string(fill), cols))
	}

	toCanvas := func(p trajectory.Point) (float64, float64) {
		return p.X * float64(cols) / float64(s.Width), p.Y * float64(rows) / float64(s.Height)
	}
	plot := func(x, y float64, glyph rune) {
		c, r := int(math.Floor(x)), int(math.Floor(y))
		if c < 0 || c >= cols || r < 0 || r >= rows {
			return
		}
		canvas[r][c] = glyph
	}

	pts := z.Points()
	for i := 1; i < len(pts); i++ {
		x0, y0 := toCanvas(pts[i-1])
		x1, y1 := toCanvas(pts[i])
		steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
		for k := 1; k < steps; k++ {
			t := float64(k) / float64(steps)
			plot(x0+(x1-x0)*t, y0+(y1-y0)*t, '.')
		}
	}
	for i, p := range pts {
		x, y := toCanvas(p)
		if i == 0 {
			plot(x, y, StartGlyph)
		} else {
			plot(x, y, 'o')
		}
	}

	var sb strings.Builder
	for r, line := range canvas {
		base := st.Sky
		if r >= horizon {
			base = st.Grass
		}
		for _, ch := range line {
			switch ch {
			case ' ', ',':
				sb.WriteString(base.Render(string(ch)))
			default:
				sb.WriteString(st.Path.Render(string(ch)))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
