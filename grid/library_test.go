package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aiworkshop/grid"
)

func TestBuiltin(t *testing.T) {
	lib := grid.Builtin()
	require.Equal(t, []string{
		"castle-simple-1", "castle-simple-2", "castle-simple-3",
		"castle-terrain-1", "castle-terrain-2", "castle-terrain-3",
		"simple-1", "simple-2", "simple-3",
		"terrain-1", "terrain-2", "terrain-3",
	}, lib.Names())

	for _, name := range lib.Names() {
		m, castle, err := lib.Map(name)
		require.NoError(t, err, name)
		require.Equal(t, strings.HasPrefix(name, "castle-"), castle != nil, name)
		require.Equal(t, strings.Contains(name, "terrain"), m.Terrain(), name)
	}

	m, castle, err := lib.Map("castle-terrain-3")
	require.NoError(t, err)
	require.Equal(t, 50, m.Scale())
	require.Equal(t, grid.Pt(375, 175), *castle)

	spec, err := lib.Spec("castle-simple-3")
	require.NoError(t, err)
	require.Equal(t, 40, spec.Scale)
	require.Contains(t, spec.Description, "reduced from 400")
}

func TestLibrary_UnknownMap(t *testing.T) {
	_, _, err := grid.Builtin().Map("atlantis")
	require.ErrorIs(t, err, grid.ErrUnknownMap)
	_, err = grid.Builtin().Spec("atlantis")
	require.ErrorIs(t, err, grid.ErrUnknownMap)
}

func TestLoadLibrary(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Valid", "maps:\n  tiny:\n    rows: ['#..#']\n    castle: {x: 1, y: 0}\n", nil},
		{"Empty", "", nil},
		{"UnknownKey", "maps:\n  tiny:\n    rowz: ['#.#']\n", grid.ErrBadLibrary},
		{"BadRows", "maps:\n  tiny:\n    rows: ['#?#']\n", grid.ErrUnknownCell},
		{"CastleOnWall", "maps:\n  tiny:\n    rows: ['#..#']\n    castle: {x: 0, y: 0}\n", grid.ErrBadLibrary},
		{"CastleWalledOff", "maps:\n  keep:\n    rows: ['...#.']\n    castle: {x: 4, y: 0}\n", grid.ErrBadLibrary},
		{"CastleAlone", "maps:\n  keep:\n    rows: ['#.#']\n    castle: {x: 1, y: 0}\n", grid.ErrBadLibrary},
		{"CastleReachedThroughTerrain", "maps:\n  keep:\n    rows: ['13#', '#1.']\n    castle: {x: 2, y: 1}\n", nil},
		{"TreeWalledOff", "maps:\n  grove:\n    rows: ['..#T']\n", grid.ErrBadLibrary},
		{"TreeNextToFloor", "maps:\n  grove:\n    rows: ['..T#']\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.LoadLibrary(strings.NewReader(tc.doc))
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLibrary_CastleIsCopied(t *testing.T) {
	lib := grid.Builtin()
	_, c1, err := lib.Map("castle-simple-1")
	require.NoError(t, err)
	c1.X = 99
	_, c2, err := lib.Map("castle-simple-1")
	require.NoError(t, err)
	require.Equal(t, 6, c2.X)
}
