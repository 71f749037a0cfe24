// Package config defines the workshop CLI configuration and its defaults.
//
// Every exercise reads its inputs from a section of Config so that a run can
// be reproduced from a YAML file alone. Library packages never see Config;
// the CLI translates it into their functional options.
package config

import (
	"fmt"

	"github.com/katalvlaran/aiworkshop/hillclimb"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Development switches the logger to the human-friendly encoder.
	Development bool `koanf:"development"`

	// Seed feeds every randomized exercise; 0 selects the built-in default.
	Seed int64 `koanf:"seed"`

	// MetricsFile, when set, receives a Prometheus textfile dump after each run.
	MetricsFile string `koanf:"metrics_file"`

	RandomSearch RandomSearch `koanf:"random_search"`
	Trajectory   Trajectory   `koanf:"trajectory"`
	HillClimb    HillClimb    `koanf:"hill_climb"`
	FileSearch   FileSearch   `koanf:"file_search"`
	Maps         Maps         `koanf:"maps"`
	Quantize     Quantize     `koanf:"quantize"`
	BikeSize     BikeSize     `koanf:"bike_size"`
}

// RandomSearch configures exercise 01.
type RandomSearch struct {
	// Available lists the lab computers; true marks a free one.
	Available []bool `koanf:"available"`
	// RoundsPerComputer scales the histogram: rounds = RoundsPerComputer * len(Available).
	RoundsPerComputer int `koanf:"rounds_per_computer"`
}

// Trajectory configures exercise 02.
type Trajectory struct {
	Width       int `koanf:"width"`
	Height      int `koanf:"height"`
	GrassHeight int `koanf:"grass_height"`
	Directions  int `koanf:"directions"`
	MaxAttempts int `koanf:"max_attempts"`
}

// HillClimb configures exercise 03.
type HillClimb struct {
	Spectrum string `koanf:"spectrum"`
	// Step is the distance between sweep starting frequencies.
	Step int `koanf:"step"`
	// MaxSteps caps a single climb; 0 disables the cap.
	MaxSteps int `koanf:"max_steps"`
}

// FileSearch configures exercises 04 and 05. An empty Root means the
// user's home directory.
type FileSearch struct {
	Root     string   `koanf:"root"`
	Name     string   `koanf:"name"`
	Subpath  []string `koanf:"subpath"`
	MaxDepth int      `koanf:"max_depth"`
}

// Maps configures exercises 06 and 07.
type Maps struct {
	// Library optionally points at a YAML map library replacing the built-in one.
	Library string `koanf:"library"`
	Simple  string `koanf:"simple"`
	Terrain string `koanf:"terrain"`
	Castle  string `koanf:"castle"`
	// Weight multiplies the A* heuristic.
	Weight int `koanf:"weight"`
}

// Quantize configures exercise 09.
type Quantize struct {
	Image string `koanf:"image"`
	// DatasetHeight is the height the image is downsampled to before clustering.
	DatasetHeight int `koanf:"dataset_height"`
	MinK          int `koanf:"min_k"`
	MaxK          int `koanf:"max_k"`
	Tries         int `koanf:"tries"`
	MaxIter       int `koanf:"max_iter"`
	// Workers bounds concurrent tries; 0 uses GOMAXPROCS.
	Workers int `koanf:"workers"`
	// Output, when set, receives the quantized image for MaxK as PNG.
	Output string `koanf:"output"`
}

// BikeSize configures exercise 10.
type BikeSize struct {
	Samples   int     `koanf:"samples"`
	Deviation float64 `koanf:"deviation"`
	Height    float64 `koanf:"height"`
	LegLength float64 `koanf:"leg_length"`
	ArmLength float64 `koanf:"arm_length"`
	// Scales lists the deviation scales compared by the best-k survey.
	Scales []float64 `koanf:"scales"`
}

// New returns a Config populated with the workshop defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		RandomSearch: RandomSearch{
			Available:         []bool{true, false, true, false, true, true, true, false, true, false},
			RoundsPerComputer: 100,
		},
		Trajectory: Trajectory{
			Width:       800,
			Height:      600,
			GrassHeight: 100,
			Directions:  10,
			MaxAttempts: 1_000_000,
		},
		HillClimb: HillClimb{
			Spectrum: "triangle",
			Step:     5,
		},
		FileSearch: FileSearch{
			Name:     "workshop.yaml",
			Subpath:  []string{"b", "a", "r", "b", "a", "r", "a", "file.txt"},
			MaxDepth: -1,
		},
		Maps: Maps{
			Simple:  "simple-1",
			Terrain: "terrain-1",
			Castle:  "castle-simple-1",
			Weight:  1,
		},
		Quantize: Quantize{
			DatasetHeight: 50,
			MinK:          2,
			MaxK:          9,
			Tries:         5,
			MaxIter:       300,
		},
		BikeSize: BikeSize{
			Samples:   100,
			Deviation: 1,
			Height:    172,
			LegLength: 86,
			ArmLength: 75,
			Scales:    []float64{0.04, 0.2, 1, 5, 25},
		},
	}
}

// Validate reports the first field that cannot drive an exercise.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.RandomSearch.RoundsPerComputer < 1 {
		return fmt.Errorf("%w: random_search.rounds_per_computer must be positive", ErrInvalidConfig)
	}
	t := c.Trajectory
	if t.Width <= 0 || t.Height <= 0 || t.GrassHeight <= 0 || t.GrassHeight >= t.Height {
		return fmt.Errorf("%w: trajectory screen %dx%d with grass %d", ErrInvalidConfig, t.Width, t.Height, t.GrassHeight)
	}
	if t.Directions < 1 {
		return fmt.Errorf("%w: trajectory.directions must be positive", ErrInvalidConfig)
	}
	if t.MaxAttempts < 0 {
		return fmt.Errorf("%w: trajectory.max_attempts cannot be negative", ErrInvalidConfig)
	}
	if _, err := hillclimb.SpectrumByName(c.HillClimb.Spectrum); err != nil {
		return fmt.Errorf("%w: hill_climb.spectrum: %w", ErrInvalidConfig, err)
	}
	if c.HillClimb.Step < 1 || c.HillClimb.MaxSteps < 0 {
		return fmt.Errorf("%w: hill_climb step %d, max_steps %d", ErrInvalidConfig, c.HillClimb.Step, c.HillClimb.MaxSteps)
	}
	if c.FileSearch.Name == "" || len(c.FileSearch.Subpath) == 0 {
		return fmt.Errorf("%w: file_search needs a name and a subpath", ErrInvalidConfig)
	}
	if c.FileSearch.MaxDepth < -1 {
		return fmt.Errorf("%w: file_search.max_depth %d", ErrInvalidConfig, c.FileSearch.MaxDepth)
	}
	if c.Maps.Simple == "" || c.Maps.Terrain == "" || c.Maps.Castle == "" {
		return fmt.Errorf("%w: every maps entry needs a map name", ErrInvalidConfig)
	}
	if c.Maps.Weight < 0 {
		return fmt.Errorf("%w: maps.weight cannot be negative", ErrInvalidConfig)
	}
	q := c.Quantize
	if q.DatasetHeight < 1 || q.MinK < 1 || q.MaxK < q.MinK || q.Tries < 1 || q.MaxIter < 1 || q.Workers < 0 {
		return fmt.Errorf("%w: quantize %+v", ErrInvalidConfig, q)
	}
	if c.BikeSize.Samples < 2 || c.BikeSize.Deviation < 0 {
		return fmt.Errorf("%w: bike_size needs at least 2 samples and a non-negative deviation", ErrInvalidConfig)
	}
	for _, s := range c.BikeSize.Scales {
		if s < 0 {
			return fmt.Errorf("%w: bike_size.scales holds %g", ErrInvalidConfig, s)
		}
	}
	return nil
}
