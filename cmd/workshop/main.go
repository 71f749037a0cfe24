// Command workshop runs the AI workshop exercises in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aiworkshop/internal/config"
	"github.com/katalvlaran/aiworkshop/internal/logger"
	"github.com/katalvlaran/aiworkshop/internal/metrics"
	"github.com/katalvlaran/aiworkshop/internal/render"
)

var (
	// Global flags
	cfgFile     string
	verbose     bool
	seed        int64
	metricsFile string

	// Loaded in PersistentPreRunE
	cfg      *config.Config
	log      *zap.Logger
	recorder *metrics.Recorder
	styles   = render.DefaultStyles()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Classical AI algorithms, one exercise at a time",
	Long: `workshop runs the exercises of an introductory AI workshop: random search,
generate and test, hill climbing, depth-first, breadth-first, Dijkstra and A*
search, minimax, k-means and k-nearest neighbours.

Every exercise reads its defaults from the configuration (--config or
WORKSHOP_CONFIG, overridden by WORKSHOP_* variables) and renders its result
to the terminal. Run "workshop list" to see them all.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file (or set WORKSHOP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed for randomized exercises (0 keeps the configured one)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cmd.Context(), cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log, err = logger.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	recorder = metrics.NewRecorder()
	log.Debug("Configuration loaded", zap.String("file", cfgFile), zap.Int64("seed", cfg.Seed))
	return nil
}

// execute runs the root command and flushes metrics and logs afterwards,
// including when the command failed. cobra skips post-run hooks on error,
// so the flush lives here.
func execute(ctx context.Context, args ...string) error {
	cfg, log, recorder = nil, nil, nil
	if args != nil {
		rootCmd.SetArgs(args)
	}
	err := rootCmd.ExecuteContext(ctx)
	if ferr := flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func flush() error {
	if cfg != nil && cfg.MetricsFile != "" && recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Debug("Metrics written", zap.String("path", cfg.MetricsFile))
	}
	if log != nil {
		_ = log.Sync()
	}
	return nil
}

// runExercise times fn under the exercise name, tags its log entries with a
// fresh run ID and logs the outcome. fn returns its work count for metrics.
func runExercise(exercise string, fn func(l *zap.Logger) (int, error)) error {
	l := logger.ForRun(log, exercise, uuid.NewString())
	start := time.Now()
	var work int
	err := recorder.Time(exercise, func() (int, error) {
		var err error
		work, err = fn(l)
		return work, err
	})
	if err != nil {
		l.Error("Exercise failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return err
	}
	l.Info("Exercise finished", zap.Int("work", work), zap.Duration("elapsed", time.Since(start)))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
