package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aiworkshop/grid"
)

// Sentinel errors for A* search.
var (
	ErrNilMap           = errors.New("astar: map is nil")
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")
	ErrGoalOutOfBounds  = errors.New("astar: goal out of bounds")
	ErrStartIsWall      = errors.New("astar: start is a wall")
	ErrGoalIsWall       = errors.New("astar: goal is a wall")
	ErrNegativeCost     = errors.New("astar: negative step cost encountered")
	ErrNoPath           = errors.New("astar: no path to goal")
	ErrOptionViolation  = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal grid.Point) int

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b grid.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Option configures a search.
type Option func(*Options)

// Options holds search parameters and hooks.
type Options struct {
	Ctx       context.Context
	Cost      grid.Cost // nil means the map's DefaultCost
	Heuristic Heuristic
	Weight    int
	OnExpand  func(p grid.Point, g, h int)

	err error
}

// DefaultOptions returns Options with Manhattan distance at weight 1.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: Manhattan,
		Weight:    1,
		OnExpand:  func(grid.Point, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost overrides the step pricing.
func WithCost(c grid.Cost) Option {
	return func(o *Options) {
		o.Cost = c
	}
}

// WithHeuristic replaces the Manhattan estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithWeight scales the heuristic. Weights above 1 may return costlier paths.
func WithWeight(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Weight cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithOnExpand registers a hook called when a point is closed.
func WithOnExpand(fn func(p grid.Point, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a search.
type Result struct {
	// Path runs from start to goal, both inclusive.
	Path []grid.Point
	// Cost is the summed step price along Path.
	Cost int
	// Expanded counts closed points, goal included.
	Expanded int
}
