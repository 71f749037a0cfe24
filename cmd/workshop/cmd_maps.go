package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aiworkshop/astar"
	"github.com/katalvlaran/aiworkshop/bfs"
	"github.com/katalvlaran/aiworkshop/dijkstra"
	"github.com/katalvlaran/aiworkshop/grid"
	"github.com/katalvlaran/aiworkshop/internal/render"
)

var (
	mapName    string
	terrain    bool
	startPoint string
)

// closestTreeCmd is exercise 06
var closestTreeCmd = &cobra.Command{
	Use:   "closest-tree",
	Short: "06: walk to the closest tree (BFS on simple maps, Dijkstra on terrain)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name := cfg.Maps.Simple
		if terrain {
			name = cfg.Maps.Terrain
		}
		if cmd.Flags().Changed("map") {
			name = mapName
		}
		m, _, err := loadMap(name)
		if err != nil {
			return err
		}
		starts, err := startPoints(m, nil)
		if err != nil {
			return err
		}

		return runExercise("closest-tree", func(l *zap.Logger) (int, error) {
			algo := "bfs"
			if m.Terrain() {
				algo = "dijkstra"
			}
			l.Debug("Searching trees", zap.String("map", name), zap.String("algorithm", algo), zap.Int("starts", len(starts)))

			t := render.NewTable(fmt.Sprintf("Closest trees on %s (%s)", name, algo), "start", "tree", "steps", "cost", "expanded")
			var shown []grid.Point
			total := 0
			for _, start := range starts {
				path, cost, expanded, err := closestTree(cmd.Context(), m, start)
				total += expanded
				switch {
				case errors.Is(err, bfs.ErrNotFound), errors.Is(err, dijkstra.ErrNotFound):
					t.AddRow(start.String(), "none", "-", "-", strconv.Itoa(expanded))
					continue
				case err != nil:
					return total, err
				}
				if shown == nil {
					shown = path
				}
				t.AddRow(start.String(), path[len(path)-1].String(),
					strconv.Itoa(len(path)-1), strconv.Itoa(cost), strconv.Itoa(expanded))
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Map(m, shown, styles))
			fmt.Fprintln(out)
			fmt.Fprint(out, t.View(styles))
			return total, nil
		})
	},
}

func closestTree(ctx context.Context, m *grid.Map, start grid.Point) ([]grid.Point, int, int, error) {
	if m.Terrain() {
		res, err := dijkstra.ClosestTree(m, start, dijkstra.WithContext(ctx))
		if res == nil {
			return nil, 0, 0, err
		}
		return res.Path, res.Cost, res.Expanded, err
	}
	res, err := bfs.ClosestTree(m, start, bfs.WithContext(ctx))
	if res == nil {
		return nil, 0, 0, err
	}
	return res.Path, res.Cost, len(res.Order), err
}

// castlePathCmd is exercise 07
var castlePathCmd = &cobra.Command{
	Use:   "castle-path",
	Short: "07: find the cheapest path to the castle with A*",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name := cfg.Maps.Castle
		if cmd.Flags().Changed("map") {
			name = mapName
		}
		m, castle, err := loadMap(name)
		if err != nil {
			return err
		}
		if castle == nil {
			return fmt.Errorf("map %q has no castle", name)
		}
		starts, err := startPoints(m, castle)
		if err != nil {
			return err
		}

		return runExercise("castle-path", func(l *zap.Logger) (int, error) {
			l.Debug("Searching castle paths", zap.String("map", name), zap.Stringer("castle", *castle), zap.Int("starts", len(starts)))

			t := render.NewTable(fmt.Sprintf("Paths to the castle at %s on %s", castle, name), "start", "steps", "cost", "expanded")
			var shown []grid.Point
			total := 0
			for _, start := range starts {
				res, err := astar.PathToCastle(m, start, *castle,
					astar.WithContext(cmd.Context()),
					astar.WithWeight(cfg.Maps.Weight),
				)
				if errors.Is(err, astar.ErrNoPath) {
					t.AddRow(start.String(), "no path", "-", "-")
					continue
				}
				if err != nil {
					return total, err
				}
				total += res.Expanded
				if shown == nil {
					shown = res.Path
				}
				t.AddRow(start.String(), strconv.Itoa(len(res.Path)-1), strconv.Itoa(res.Cost), strconv.Itoa(res.Expanded))
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Map(m, shown, styles))
			fmt.Fprintln(out)
			fmt.Fprint(out, t.View(styles))
			return total, nil
		})
	},
}

func loadMap(name string) (*grid.Map, *grid.Point, error) {
	lib := grid.Builtin()
	if cfg.Maps.Library != "" {
		f, err := os.Open(cfg.Maps.Library)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		if lib, err = grid.LoadLibrary(f); err != nil {
			return nil, nil, err
		}
	}
	return lib.Map(name)
}

// startPoints returns the --start point, or the centre of every walkable
// non-tree cell except skip.
func startPoints(m *grid.Map, skip *grid.Point) ([]grid.Point, error) {
	if startPoint != "" {
		p, err := parsePoint(startPoint)
		if err != nil {
			return nil, err
		}
		return []grid.Point{p}, nil
	}
	var out []grid.Point
	for _, p := range m.Points(func(c grid.Cell) bool { return c == grid.Floor || c.IsTerrain() }) {
		if skip == nil || p != *skip {
			out = append(out, p)
		}
	}
	return out, nil
}

func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return grid.Pt(x, y), nil
}

func init() {
	for _, c := range []*cobra.Command{closestTreeCmd, castlePathCmd} {
		c.Flags().StringVar(&mapName, "map", "", "Map name from the library")
		c.Flags().StringVar(&startPoint, "start", "", "Start point x,y (default: every walkable cell)")
	}
	closestTreeCmd.Flags().BoolVar(&terrain, "terrain", false, "Use the configured terrain map")

	rootCmd.AddCommand(closestTreeCmd)
	rootCmd.AddCommand(castlePathCmd)
}
