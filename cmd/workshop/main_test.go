package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aiworkshop/internal/catalog"
	"github.com/katalvlaran/aiworkshop/internal/config"
	"github.com/katalvlaran/aiworkshop/knn"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// run executes the root command with args on a clean flag state and returns
// everything written to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("WORKSHOP_LOG_LEVEL", "error")
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	err := execute(context.Background(), args...)
	return ansi.ReplaceAllString(out.String(), ""), err
}

func resetFlags() {
	cfgFile, verbose, seed, metricsFile = "", false, 0, ""
	available, directions, spectrum, climbStart = nil, 0, "", 0
	searchRoot, searchName, searchSubpath = "", "", ""
	mapName, terrain, startPoint = "", false, ""
	boardRows, showScores, static = "", false, false
	imagePath, outputPath, cyclist = "", "", knn.Cyclist{}
	describeStyle, describeWidth = "auto", 80

	var clear func(c *cobra.Command)
	clear = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) { f.Changed = false }
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			clear(sub)
		}
	}
	clear(rootCmd)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, e := range catalog.All() {
		require.Contains(t, out, e.Command)
	}
	require.Contains(t, out, "k-nearest neighbours")
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "7", "--style", "notty")
	require.NoError(t, err)
	require.Contains(t, out, "Path to the castle")

	_, err = run(t, "describe", "42")
	require.ErrorIs(t, err, catalog.ErrUnknownExercise)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("WORKSHOP_TRAJECTORY__DIRECTIONS", "0")
	_, err := run(t, "list")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRandomSearch(t *testing.T) {
	out, err := run(t, "random-search", "--available", "true,false,true", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "300 searches")

	lines := strings.Split(out, "\n")
	var busy string
	for _, l := range lines {
		if strings.Contains(l, " 1 busy") {
			busy = l
		}
	}
	require.NotEmpty(t, busy)
	require.True(t, strings.HasSuffix(busy, " 0"), busy)
	require.NotContains(t, busy, "█")
}

func TestTrajectory(t *testing.T) {
	cfgPath := writeFile(t, "workshop.yaml", `
trajectory:
  width: 80
  height: 60
  grass_height: 10
  directions: 3
`)
	out, err := run(t, "trajectory", "--config", cfgPath, "--directions", "2", "--seed", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Duck trajectory after")
	require.Contains(t, out, "@")
	// the zigzag starts centred on the grass line
	require.Contains(t, out, "40.0")
	require.Contains(t, out, "51.0")
}

func TestHillClimb(t *testing.T) {
	out, err := run(t, "hill-climb", "--spectrum", "triangle")
	require.NoError(t, err)
	require.Contains(t, out, "Spectrum triangle")
	require.Contains(t, out, "Local maxima reached")
	require.Contains(t, out, "100")

	out, err = run(t, "hill-climb", "--start", "60")
	require.NoError(t, err)
	require.Contains(t, out, "Climbed from 60 to 100 (clarity 100.00) in 40 steps.")

	_, err = run(t, "hill-climb", "--spectrum", "square")
	require.Error(t, err)
}

func TestFileSearch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "c", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "c", "b", "target.txt"), nil, 0o600))

	out, err := run(t, "file-search", "--root", root, "--name", "target.txt")
	require.NoError(t, err)
	require.Contains(t, out, "Found the file at: "+filepath.Join(root, "c", "b", "target.txt"))

	out, err = run(t, "file-search", "--root", root, "--name", "missing.txt")
	require.NoError(t, err)
	require.Contains(t, out, `File "missing.txt" is not found`)

	out, err = run(t, "subpath-search", "--root", root, "--subpath", "b/target.txt")
	require.NoError(t, err)
	require.Contains(t, out, "Found the file at: "+filepath.Join(root, "c", "b", "target.txt"))
}

func TestClosestTree(t *testing.T) {
	out, err := run(t, "closest-tree", "--map", "simple-1", "--start", "1,1")
	require.NoError(t, err)
	require.Contains(t, out, "Closest trees on simple-1 (bfs)")
	require.Contains(t, out, "(6, 2)")
	require.Contains(t, out, "60")
	require.Contains(t, out, "@")

	out, err = run(t, "closest-tree", "--terrain")
	require.NoError(t, err)
	require.Contains(t, out, "Closest trees on terrain-1 (dijkstra)")

	_, err = run(t, "closest-tree", "--start", "nowhere")
	require.Error(t, err)
}

func TestCastlePath(t *testing.T) {
	out, err := run(t, "castle-path", "--map", "castle-simple-1", "--start", "1,1")
	require.NoError(t, err)
	require.Contains(t, out, "Paths to the castle at (6, 2) on castle-simple-1")
	require.Contains(t, out, "60")

	_, err = run(t, "castle-path", "--map", "simple-1")
	require.Error(t, err)
}

func TestTicTacToeStatic(t *testing.T) {
	out, err := run(t, "tictactoe", "--static", "--scores", "--board", "XX.,OO.,...")
	require.NoError(t, err)
	require.Contains(t, out, "+1")
	require.Contains(t, out, "Best move for X: (0,2)")

	out, err = run(t, "tictactoe", "--static", "--board", "XXX,OO.,...")
	require.NoError(t, err)
	require.Contains(t, out, "Game over")

	_, err = run(t, "tictactoe", "--static", "--board", "XX")
	require.Error(t, err)
}

func TestQuantize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	cfgPath := writeFile(t, "workshop.yaml", `
quantize:
  dataset_height: 4
  min_k: 1
  max_k: 2
  tries: 3
  workers: 2
`)
	outPath := filepath.Join(dir, "out.png")
	out, err := run(t, "quantize", "--config", cfgPath, "--image", in, "--output", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "k = 1")
	require.Contains(t, out, "k = 2")
	require.Contains(t, out, "Variation vs number of clusters")
	require.FileExists(t, outPath)

	_, err = run(t, "quantize")
	require.Error(t, err)
}

func TestBikeSize(t *testing.T) {
	t.Setenv("WORKSHOP_BIKE_SIZE__SAMPLES", "30")
	metricsPath := filepath.Join(t.TempDir(), "workshop.prom")

	out, err := run(t, "bike-size", "--height", "180", "--metrics-file", metricsPath)
	require.NoError(t, err)
	require.Contains(t, out, "Recommended size for 180/86/75 cm")
	require.Contains(t, out, "Best k per deviation scale")
	require.Contains(t, out, "0.04")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `workshop_runs_total{exercise="bike-size"} 1`)
	require.Contains(t, string(prom), `workshop_expanded_nodes_total{exercise="bike-size"} 30`)
}

func TestFailedRunWritesMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "workshop.prom")

	_, err := run(t, "--metrics-file", metricsPath, "closest-tree", "--map", "simple-1", "--start", "0,0")
	require.Error(t, err)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `workshop_runs_total{exercise="closest-tree"} 1`)
	require.Contains(t, string(prom), `workshop_run_failures_total{exercise="closest-tree"} 1`)
}
