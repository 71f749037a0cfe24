package kmeans

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for clustering.
var (
	ErrEmptyDataset      = errors.New("kmeans: dataset is empty")
	ErrBadK              = errors.New("kmeans: k must be at least 1")
	ErrBadTries          = errors.New("kmeans: tries must be at least 1")
	ErrDimensionMismatch = errors.New("kmeans: points must share a non-zero dimension")
	ErrOptionViolation   = errors.New("kmeans: invalid option supplied")
)

// DefaultMaxIter bounds the Lloyd iterations of a single try.
const DefaultMaxIter = 300

// Option configures Fit and Elbow.
type Option func(*Options)

// Options holds clustering parameters.
type Options struct {
	Ctx     context.Context
	Seed    int64
	MaxIter int
	Workers int

	// InitLo and InitHi bound the initial centroid coordinates when
	// HasInitRange is set; otherwise the per-dimension data bounds are used.
	InitLo, InitHi float64
	HasInitRange   bool

	err error
}

// DefaultOptions returns Options with seed 0 (rng.DefaultSeed),
// DefaultMaxIter iterations and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxIter: DefaultMaxIter,
		Workers: runtime.GOMAXPROCS(0),
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

// WithSeed sets the seed from which every try derives its stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxIter bounds the iterations of each try.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithWorkers limits how many tries run at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithInitRange draws initial centroid coordinates uniformly from [lo, hi]
// in every dimension, e.g. [0, 255] for colours.
func WithInitRange(lo, hi float64) Option {
	return func(o *Options) {
		if lo > hi {
			o.err = fmt.Errorf("%w: init range [%g, %g] is empty", ErrOptionViolation, lo, hi)
			return
		}
		o.InitLo, o.InitHi, o.HasInitRange = lo, hi, true
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is the best of all tries.
type Result struct {
	// Centroids of the winning try, k rows of the data dimension.
	Centroids [][]float64
	// Variation of the winning try.
	Variation float64
	// Best is the index of the winning try.
	Best int
	// Variations and Iterations hold per-try figures in try order.
	Variations []float64
	Iterations []int
}
