package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BarChart draws one horizontal bar per label, scaled so the largest value
// spans width cells.
func BarChart(title string, labels []string, values []int, width int, st Styles) string {
	if width < 1 {
		width = 1
	}
	labelWidth, maxValue := 0, 0
	for i, l := range labels {
		labelWidth = max(labelWidth, len(l))
		if i < len(values) {
			maxValue = max(maxValue, values[i])
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(st.Title.Render(title))
		sb.WriteString("\n")
	}
	for i, l := range labels {
		v := 0
		if i < len(values) {
			v = values[i]
		}
		n := 0
		if maxValue > 0 {
			n = v * width / maxValue
		}
		fmt.Fprintf(&sb, "%s %s %s %d\n",
			pad(l, labelWidth),
			st.Muted.Render("|"),
			st.Bar.Render(strings.Repeat("█", n)),
			v)
	}
	return sb.String()
}

// Series is a sequence of y values plotted against their index.
type Series struct {
	Title  string
	XLabel string
	YLabel string
	// X0 is the x value of Values[0]; later points step by one.
	X0     int
	Values []float64
	// Marks lists indexes drawn with the accent marker instead of a dot.
	Marks []int
}

// Plot rasterises s into a width x height character grid. When there are
// more values than columns, each column shows the value at its left edge.
func Plot(s Series, width, height int, st Styles) string {
	if len(s.Values) == 0 {
		return st.Muted.Render("(no data)") + "\n"
	}
	width = min(max(width, 1), len(s.Values))
	height = max(height, 2)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range s.Values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	marked := make(map[int]bool, len(s.Marks))
	for _, i := range s.Marks {
		marked[i] = true
	}

	canvas := make([][]rune, height)
	for r := range canvas {
		canvas[r] = []rune(strings.Repeat(" ", width))
	}
	accent := make(map[[2]int]bool)
	for c := 0; c < width; c++ {
		from, to := c*len(s.Values)/width, (c+1)*len(s.Values)/width
		v := s.Values[from]
		row := height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
		canvas[row][c] = '•'
		for i := from; i < max(to, from+1); i++ {
			if marked[i] {
				accent[[2]int{row, c}] = true
				canvas[row][c] = '◆'
			}
		}
	}

	hiLabel, loLabel := formatFloat(hi), formatFloat(lo)
	axisWidth := max(len(hiLabel), len(loLabel))

	var sb strings.Builder
	if s.Title != "" {
		sb.WriteString(st.Title.Render(s.Title))
		sb.WriteString("\n")
	}
	if s.YLabel != "" {
		sb.WriteString(st.Muted.Render(s.YLabel))
		sb.WriteString("\n")
	}
	for r, line := range canvas {
		label := ""
		switch r {
		case 0:
			label = hiLabel
		case height - 1:
			label = loLabel
		}
		sb.WriteString(strings.Repeat(" ", axisWidth-len(label)))
		sb.WriteString(st.Muted.Render(label + " |"))
		for c, ch := range line {
			switch {
			case accent[[2]int{r, c}]:
				sb.WriteString(st.Accent.Render(string(ch)))
			case ch == ' ':
				sb.WriteRune(ch)
			default:
				sb.WriteString(st.Bar.Render(string(ch)))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", axisWidth+1))
	sb.WriteString(st.Muted.Render("+" + strings.Repeat("-", width)))
	sb.WriteString("\n")

	first, last := strconv.Itoa(s.X0), strconv.Itoa(s.X0+len(s.Values)-1)
	gap := max(1, width-len(first)-len(last))
	fmt.Fprintf(&sb, "%s%s%s%s", strings.Repeat(" ", axisWidth+2), first, strings.Repeat(" ", gap), last)
	if s.XLabel != "" {
		sb.WriteString("  ")
		sb.WriteString(st.Muted.Render(s.XLabel))
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
