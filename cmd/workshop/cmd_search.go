package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aiworkshop/hillclimb"
	"github.com/katalvlaran/aiworkshop/internal/render"
	"github.com/katalvlaran/aiworkshop/randsearch"
	"github.com/katalvlaran/aiworkshop/trajectory"
)

var (
	available  []bool
	directions int
	spectrum   string
	climbStart int
)

// randomSearchCmd is exercise 01
var randomSearchCmd = &cobra.Command{
	Use:   "random-search",
	Short: "01: pick an available computer at random",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("available") {
			cfg.RandomSearch.Available = available
		}
		avail := cfg.RandomSearch.Available
		rounds := cfg.RandomSearch.RoundsPerComputer * len(avail)

		return runExercise("random-search", func(l *zap.Logger) (int, error) {
			probes := 0
			counts, err := randsearch.Distribution(avail, rounds,
				randsearch.WithSeed(cfg.Seed),
				randsearch.WithOnProbe(func(int, bool) { probes++ }),
			)
			if err != nil {
				return probes, err
			}
			l.Debug("Distribution computed", zap.Int("rounds", rounds), zap.Int("probes", probes))

			labels := make([]string, len(avail))
			for i, free := range avail {
				state := "busy"
				if free {
					state = "free"
				}
				labels[i] = fmt.Sprintf("%2d %s", i, state)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.BarChart(
				fmt.Sprintf("Picked computer distribution (%d searches)", rounds),
				labels, counts, 40, styles))
			return probes, nil
		})
	},
}

// trajectoryCmd is exercise 02
var trajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "02: generate a duck flight by generate-and-test",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tc := cfg.Trajectory
		if cmd.Flags().Changed("directions") {
			tc.Directions = directions
		}
		screen := trajectory.Screen{Width: tc.Width, Height: tc.Height, GrassHeight: tc.GrassHeight}

		return runExercise("trajectory", func(l *zap.Logger) (int, error) {
			res, err := trajectory.Generate(screen, tc.Directions,
				trajectory.WithContext(cmd.Context()),
				trajectory.WithSeed(cfg.Seed),
				trajectory.WithMaxAttempts(tc.MaxAttempts),
			)
			if err != nil {
				return tc.MaxAttempts, err
			}
			l.Debug("Trajectory accepted", zap.Int("attempts", res.Attempts))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("Duck trajectory after %d attempts", res.Attempts)))
			cols := 80
			rows := max(1, cols*tc.Height/tc.Width/2)
			fmt.Fprint(out, render.Trajectory(screen, res.Trajectory, cols, rows, styles))

			t := render.NewTable("", "point", "x", "y")
			for i, p := range res.Trajectory.Points() {
				t.AddRow(strconv.Itoa(i), fmt.Sprintf("%.1f", p.X), fmt.Sprintf("%.1f", p.Y))
			}
			fmt.Fprint(out, t.View(styles))
			return res.Attempts, nil
		})
	},
}

// hillClimbCmd is exercise 03
var hillClimbCmd = &cobra.Command{
	Use:   "hill-climb",
	Short: "03: finetune a radio station by hill climbing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		hc := cfg.HillClimb
		if cmd.Flags().Changed("spectrum") {
			hc.Spectrum = spectrum
		}
		spec, err := hillclimb.SpectrumByName(hc.Spectrum)
		if err != nil {
			return err
		}

		return runExercise("hill-climb", func(l *zap.Logger) (int, error) {
			out := cmd.OutOrStdout()
			left, right := spec.Edges()

			if cmd.Flags().Changed("start") {
				res, err := hillclimb.Climb(climbStart, spec.Clarity, hillclimb.WithMaxSteps(hc.MaxSteps))
				if err != nil {
					return 0, err
				}
				plotSpectrum(cmd, hc.Spectrum, left, right, spec, []int{res.Frequency})
				fmt.Fprintf(out, "Climbed from %d to %d (clarity %.2f) in %d steps.\n",
					climbStart, res.Frequency, res.Clarity, len(res.Path)-1)
				return len(res.Path), nil
			}

			sweep := hillclimb.Sweep(spec, hc.Step)
			ends := make(map[int]int)
			for _, pair := range sweep {
				ends[pair[1]]++
			}
			peaks := make([]int, 0, len(ends))
			for f := range ends {
				peaks = append(peaks, f)
			}
			sort.Ints(peaks)
			l.Debug("Sweep finished", zap.Int("starts", len(sweep)), zap.Ints("peaks", peaks))

			plotSpectrum(cmd, hc.Spectrum, left, right, spec, peaks)
			t := render.NewTable("Local maxima reached", "frequency", "clarity", "starts")
			for _, f := range peaks {
				t.AddRow(strconv.Itoa(f), fmt.Sprintf("%.2f", spec.Clarity(f)), strconv.Itoa(ends[f]))
			}
			fmt.Fprint(out, t.View(styles))
			return len(sweep), nil
		})
	},
}

func plotSpectrum(cmd *cobra.Command, name string, left, right int, spec hillclimb.Spectrum, marks []int) {
	values := make([]float64, 0, right-left+1)
	for f := left; f <= right; f++ {
		values = append(values, spec.Clarity(f))
	}
	idx := make([]int, len(marks))
	for i, f := range marks {
		idx[i] = f - left
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Plot(render.Series{
		Title:  "Spectrum " + name,
		XLabel: "frequency",
		YLabel: "clarity",
		X0:     left,
		Values: values,
		Marks:  idx,
	}, 100, 12, styles))
}

func init() {
	randomSearchCmd.Flags().BoolSliceVar(&available, "available", nil, "Computer availability, e.g. true,false,true")
	trajectoryCmd.Flags().IntVar(&directions, "directions", 0, "Number of straights in the zigzag")
	hillClimbCmd.Flags().StringVar(&spectrum, "spectrum", "", "Spectrum: "+fmt.Sprint(hillclimb.SpectrumNames()))
	hillClimbCmd.Flags().IntVar(&climbStart, "start", 0, "Climb once from this frequency instead of sweeping")

	rootCmd.AddCommand(randomSearchCmd)
	rootCmd.AddCommand(trajectoryCmd)
	rootCmd.AddCommand(hillClimbCmd)
}
