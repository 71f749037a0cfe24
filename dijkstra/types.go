package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/aiworkshop/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMap indicates that a nil *grid.Map was passed.
	ErrNilMap = errors.New("dijkstra: map is nil")

	// ErrNilGoal indicates that Search got a nil goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrStartOutOfBounds indicates a start point outside the map.
	ErrStartOutOfBounds = errors.New("dijkstra: start out of bounds")

	// ErrStartIsWall indicates a start point on a wall.
	ErrStartIsWall = errors.New("dijkstra: start is a wall")

	// ErrNegativeCost indicates the cost function returned a negative price.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrNotFound indicates that no goal point is reachable.
	ErrNotFound = errors.New("dijkstra: goal not reachable")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the search.
//
// Cost        – step pricing; nil means the map's DefaultCost.
// MaxDistance – points whose distance would exceed this are skipped.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// OnSettle    – called once per point when its distance becomes final.
type Options struct {
	Ctx         context.Context
	Cost        grid.Cost
	MaxDistance int
	OnSettle    func(p grid.Point, dist int)

	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, map-default
// pricing and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt,
		OnSettle:    func(grid.Point, int) {},
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

// WithMaxDistance sets a maximum distance threshold. Negative values are
// recorded and surfaced as ErrOptionViolation.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnSettle registers a hook called when a point is settled.
func WithOnSettle(fn func(p grid.Point, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result is the outcome of a search.
type Result struct {
	// Path runs from start to the goal, both inclusive. Nil if not found.
	Path []grid.Point
	// Cost is the summed step price along Path.
	Cost int
	// Expanded counts settled points.
	Expanded int
	// Dist holds the best known distance of every discovered point.
	Dist map[grid.Point]int
	// Prev maps each discovered point except start to its predecessor.
	Prev map[grid.Point]grid.Point
}

// PathTo reconstructs the best known path from start to dest.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("dijkstra: no path to %v", dest)
	}
	var path []grid.Point
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
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
