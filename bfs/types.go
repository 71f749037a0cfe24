package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aiworkshop/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilMap is returned if a nil map pointer is passed.
	ErrNilMap = errors.New("bfs: map is nil")

	// ErrNilGoal is returned if Search gets a nil goal predicate.
	ErrNilGoal = errors.New("bfs: goal predicate is nil")

	// ErrStartOutOfBounds is returned when the start point lies outside the map.
	ErrStartOutOfBounds = errors.New("bfs: start out of bounds")

	// ErrStartIsWall is returned when the start point is a wall.
	ErrStartIsWall = errors.New("bfs: start is a wall")

	// ErrNotFound is returned when no goal point is reachable.
	ErrNotFound = errors.New("bfs: goal not reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a point is enqueued, with its depth.
	OnEnqueue func(p grid.Point, depth int)

	// OnVisit is called when a point is dequeued. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(p grid.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// StepCost is the cost reported per step in Result.Cost.
	StepCost int

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks, no
// depth limit and grid.SimpleStepCost per step.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Point, int) {},
		OnVisit:   func(grid.Point, int) error { return nil },
		StepCost:  grid.SimpleStepCost,
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p grid.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStepCost sets the cost reported per step. Negative values are rejected.
func WithStepCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: StepCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.StepCost = c
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Path runs from start to the goal, both inclusive. Nil if not found.
	Path []grid.Point
	// Cost is (len(Path)-1) × StepCost.
	Cost int
	// Order lists points in dequeue order.
	Order []grid.Point
	// Depth maps each discovered point to its step count from start.
	Depth map[grid.Point]int
	// Parent maps each discovered point except start to its predecessor.
	Parent map[grid.Point]grid.Point
}

// PathTo reconstructs the path from the start point to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []grid.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
