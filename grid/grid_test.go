package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aiworkshop/grid"
)

var room = []string{
	"#####",
	"#..T#",
	"#.#.#",
	"#####",
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts []grid.Option
		want error
	}{
		{"NoRows", nil, nil, grid.ErrEmptyMap},
		{"EmptyRow", []string{""}, nil, grid.ErrEmptyMap},
		{"Ragged", []string{"###", "##"}, nil, grid.ErrNonRectangular},
		{"UnknownCell", []string{"#x#"}, nil, grid.ErrUnknownCell},
		{"ZeroScale", room, []grid.Option{grid.WithScale(0)}, grid.ErrBadScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.rows, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMap_Basics(t *testing.T) {
	m, err := grid.Parse(room)
	require.NoError(t, err)
	require.Equal(t, 5, m.Width())
	require.Equal(t, 4, m.Height())
	require.Equal(t, 1, m.Scale())
	require.False(t, m.Terrain())

	require.True(t, m.IsWall(grid.Pt(0, 0)))
	require.True(t, m.IsWall(grid.Pt(-1, 2)), "outside reads as wall")
	require.True(t, m.IsFloor(grid.Pt(1, 1)))
	require.True(t, m.IsTree(grid.Pt(3, 1)))
	require.False(t, m.IsFloor(grid.Pt(3, 1)))
	require.Equal(t, strings.Join(room, "\n"), m.String())
}

func TestMap_NeighborOrder(t *testing.T) {
	m := grid.MustParse([]string{
		"...",
		"...",
		"...",
	})
	require.Equal(t,
		[]grid.Point{grid.Pt(0, 1), grid.Pt(2, 1), grid.Pt(1, 0), grid.Pt(1, 2)},
		m.Neighbors(grid.Pt(1, 1)))

	// corner: only right and down remain
	require.Equal(t, []grid.Point{grid.Pt(1, 0), grid.Pt(0, 1)}, m.Neighbors(grid.Pt(0, 0)))
}

func TestMap_NeighborsSkipWalls(t *testing.T) {
	m := grid.MustParse(room)
	require.Equal(t, []grid.Point{grid.Pt(2, 1), grid.Pt(1, 2)}, m.Neighbors(grid.Pt(1, 1)))
}

func TestMap_Scaled(t *testing.T) {
	m := grid.MustParse([]string{"#.", ".T"}, grid.WithScale(10))
	require.Equal(t, 20, m.Width())
	require.Equal(t, 20, m.Height())
	require.Equal(t, 2, m.Columns())
	require.Equal(t, 2, m.Rows())
	require.True(t, m.IsWall(grid.Pt(9, 9)))
	require.True(t, m.IsFloor(grid.Pt(10, 0)))
	require.True(t, m.IsTree(grid.Pt(19, 19)))
	require.Equal(t, grid.Pt(15, 5), m.CellCenter(1, 0))

	col, row := m.CellOf(grid.Pt(12, 17))
	require.Equal(t, 1, col)
	require.Equal(t, 1, row)
}

func TestMap_Points(t *testing.T) {
	m := grid.MustParse(room)
	floors := m.Points(func(c grid.Cell) bool { return c == grid.Floor })
	require.Equal(t, []grid.Point{grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(1, 2), grid.Pt(3, 2)}, floors)
}

func TestCosts(t *testing.T) {
	m := grid.MustParse([]string{"1123T"})
	require.True(t, m.Terrain())

	cost := m.DefaultCost()
	require.Equal(t, 1, cost(m, grid.Pt(0, 0), grid.Pt(1, 0)), "grass→grass")
	require.Equal(t, 2, cost(m, grid.Pt(1, 0), grid.Pt(2, 0)), "grass→sand")
	require.Equal(t, 6, cost(m, grid.Pt(2, 0), grid.Pt(3, 0)), "sand→water")
	require.Equal(t, 5, cost(m, grid.Pt(3, 0), grid.Pt(4, 0)), "water→tree")

	simple := grid.MustParse(room)
	require.Equal(t, grid.SimpleStepCost, simple.DefaultCost()(simple, grid.Pt(1, 1), grid.Pt(2, 1)))
}

func TestRegions(t *testing.T) {
	m := grid.MustParse([]string{
		"#####",
		"#.#.#",
		"#.#T#",
		"#####",
	})
	regions := m.Regions()
	require.Len(t, regions, 2)
	require.Equal(t, []grid.Point{grid.Pt(1, 1), grid.Pt(1, 2)}, regions[0])
	require.Equal(t, []grid.Point{grid.Pt(3, 1), grid.Pt(3, 2)}, regions[1])

	require.True(t, m.Connected(grid.Pt(3, 1), grid.Pt(3, 2)))
	require.False(t, m.Connected(grid.Pt(1, 1), grid.Pt(3, 2)))
	require.False(t, m.Connected(grid.Pt(0, 0), grid.Pt(1, 1)))
}
