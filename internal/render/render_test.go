package render_test

import (
	"image/color"
	"regexp"
	"strings"
	"testing"

	"github.com/katalvlaran/aiworkshop/grid"
	"github.com/katalvlaran/aiworkshop/internal/render"
	"github.com/katalvlaran/aiworkshop/minimax"
	"github.com/katalvlaran/aiworkshop/trajectory"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// lines strips colour codes and splits the rendering into lines.
func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(ansi.ReplaceAllString(s, ""), "\n"), "\n")
}

var st = render.DefaultStyles()

func TestTable(t *testing.T) {
	tbl := render.NewTable("Maps", "name", "scale")
	tbl.AddRow("simple-1", "1")
	tbl.AddRow("castle-simple-3", "40")

	got := lines(tbl.View(st))
	require.Len(t, got, 5)
	require.Equal(t, "Maps", got[0])
	require.Equal(t, "name"+strings.Repeat(" ", 12)+"| scale", got[1])
	require.Equal(t, strings.Repeat("-", 23), got[2])
	require.Equal(t, "castle-simple-3 | 40   ", got[4])
}

func TestBarChart(t *testing.T) {
	got := lines(render.BarChart("", []string{"a", "bb"}, []int{2, 4}, 10, st))
	require.Len(t, got, 2)
	require.Equal(t, 5, strings.Count(got[0], "█"))
	require.Equal(t, 10, strings.Count(got[1], "█"))
	require.True(t, strings.HasPrefix(got[0], "a  | "))
	require.True(t, strings.HasSuffix(got[1], " 4"))
}

func TestBarChart_AllZero(t *testing.T) {
	got := lines(render.BarChart("t", []string{"x"}, []int{0}, 10, st))
	require.Equal(t, []string{"t", "x |  0"}, got)
}

func TestPlot(t *testing.T) {
	got := lines(render.Plot(render.Series{Values: []float64{0, 1, 2, 3}, Marks: []int{3}}, 4, 4, st))
	require.Equal(t, "3 |   ◆", got[0])
	require.Equal(t, "  |  • ", got[1])
	require.Equal(t, "  | •  ", got[2])
	require.Equal(t, "0 |•   ", got[3])
	require.Equal(t, "  +----", got[4])
	require.Equal(t, "   0  3", got[5])
}

func TestPlot_Empty(t *testing.T) {
	require.Equal(t, []string{"(no data)"}, lines(render.Plot(render.Series{}, 10, 5, st)))
}

func TestPlot_Downsamples(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	got := lines(render.Plot(render.Series{Title: "ramp", Values: values}, 10, 5, st))
	require.Equal(t, "ramp", got[0])
	require.Equal(t, "   +----------", got[6])
	require.Contains(t, got[7], "99")
}

func TestMap(t *testing.T) {
	m := grid.MustParse([]string{
		"#####",
		"#..T#",
		"#####",
	})
	path := []grid.Point{grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(3, 1)}
	require.Equal(t, []string{"#####", "#@*X#", "#####"}, lines(render.Map(m, path, st)))
	require.Equal(t, []string{"#####", "#..T#", "#####"}, lines(render.Map(m, nil, st)))
}

func TestMap_Scaled(t *testing.T) {
	m := grid.MustParse([]string{"....", "...."}, grid.WithScale(10))
	path := []grid.Point{grid.Pt(5, 5), grid.Pt(6, 5), grid.Pt(15, 5), grid.Pt(25, 15), grid.Pt(26, 15)}
	require.Equal(t, []string{"@*..", "..X."}, lines(render.Map(m, path, st)))
}

func TestTrajectory(t *testing.T) {
	screen := trajectory.Screen{Width: 80, Height: 60, GrassHeight: 10}
	z := trajectory.ZigZag{
		Start:     trajectory.Point{X: 42, Y: 51},
		Straights: []trajectory.Straight{{Angle: 270, Length: 30}},
	}
	got := lines(render.Trajectory(screen, z, 8, 6, st))
	require.Len(t, got, 6)
	require.Equal(t, "        ", got[0])
	require.Contains(t, got[2], "o")
	require.Contains(t, got[3], ".")
	require.Contains(t, got[5], "@")
	require.True(t, strings.HasPrefix(got[5], ",,,,"))
}

func TestBoard_Scores(t *testing.T) {
	b, err := minimax.ParseBoard([]string{"XX.", "OO.", "..."})
	require.NoError(t, err)

	got := lines(render.Board(b, minimax.Scores(b), "", st))
	require.Len(t, got, 5)
	require.Equal(t, " X │ X │+1 ", got[0])
	require.Equal(t, "───┼───┼───", got[1])
	require.True(t, strings.HasPrefix(got[2], " O │ O │"))
}

func TestBoard_KeysAndWin(t *testing.T) {
	b, err := minimax.ParseBoard([]string{"XXX", "OO.", "..."})
	require.NoError(t, err)

	got := lines(render.Board(b, nil, "qweasdzxc", st))
	require.Equal(t, " X │ X │ X ", got[0])
	require.Equal(t, " O │ O │ d ", got[2])
	require.Equal(t, " z │ x │ c ", got[4])
}

func TestSwatches(t *testing.T) {
	got := lines(render.Swatches([]color.RGBA{{R: 255, A: 255}, {G: 16, B: 1, A: 255}}))
	require.Len(t, got, 2)
	require.True(t, strings.HasSuffix(got[0], "#ff0000"))
	require.True(t, strings.HasSuffix(got[1], "#001001"))
}
