package config_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/aiworkshop/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should carry the workshop defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.RandomSearch.Available, convey.ShouldHaveLength, 10)
			convey.So(cfg.RandomSearch.RoundsPerComputer, convey.ShouldEqual, 100)
			convey.So(cfg.Trajectory.Width, convey.ShouldEqual, 800)
			convey.So(cfg.Trajectory.Height, convey.ShouldEqual, 600)
			convey.So(cfg.Trajectory.GrassHeight, convey.ShouldEqual, 100)
			convey.So(cfg.Trajectory.Directions, convey.ShouldEqual, 10)
			convey.So(cfg.HillClimb.Spectrum, convey.ShouldEqual, "triangle")
			convey.So(cfg.FileSearch.MaxDepth, convey.ShouldEqual, -1)
			convey.So(cfg.Maps.Castle, convey.ShouldEqual, "castle-simple-1")
			convey.So(cfg.Quantize.MinK, convey.ShouldEqual, 2)
			convey.So(cfg.Quantize.MaxK, convey.ShouldEqual, 9)
			convey.So(cfg.BikeSize.Samples, convey.ShouldEqual, 100)
		})

		convey.Convey("Then it should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"rounds", func(c *config.Config) { c.RandomSearch.RoundsPerComputer = 0 }},
		{"grass taller than screen", func(c *config.Config) { c.Trajectory.GrassHeight = 600 }},
		{"directions", func(c *config.Config) { c.Trajectory.Directions = 0 }},
		{"attempts", func(c *config.Config) { c.Trajectory.MaxAttempts = -1 }},
		{"spectrum", func(c *config.Config) { c.HillClimb.Spectrum = "quad-sin" }},
		{"step", func(c *config.Config) { c.HillClimb.Step = 0 }},
		{"subpath", func(c *config.Config) { c.FileSearch.Subpath = nil }},
		{"depth", func(c *config.Config) { c.FileSearch.MaxDepth = -2 }},
		{"map name", func(c *config.Config) { c.Maps.Terrain = "" }},
		{"weight", func(c *config.Config) { c.Maps.Weight = -1 }},
		{"k range", func(c *config.Config) { c.Quantize.MaxK = 1 }},
		{"tries", func(c *config.Config) { c.Quantize.Tries = 0 }},
		{"samples", func(c *config.Config) { c.BikeSize.Samples = 1 }},
		{"scales", func(c *config.Config) { c.BikeSize.Scales = []float64{1, -1} }},
	}

	convey.Convey("Given configs with one broken field", t, func() {
		for _, tc := range cases {
			cfg := config.New()
			tc.mutate(cfg)

			convey.Convey("Then "+tc.name+" should be rejected", func() {
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
