package randsearch

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/aiworkshop/internal/rng"
)

// Sentinel errors for random search.
var (
	// ErrNoneAvailable indicates that no item in the pool is available.
	ErrNoneAvailable = errors.New("randsearch: no available item")

	// ErrBadRounds indicates a negative number of Distribution rounds.
	ErrBadRounds = errors.New("randsearch: rounds must be non-negative")
)

// Option configures random search via functional arguments.
type Option func(*Options)

// Options holds the random source and probe hook.
type Options struct {
	// Rand is the random source. Nil means rng.FromSeed(0).
	Rand *rand.Rand

	// OnProbe is called for every tested index with its availability.
	OnProbe func(index int, available bool)
}

// DefaultOptions returns Options with the default deterministic stream and a
// no-op probe hook.
func DefaultOptions() Options {
	return Options{
		Rand:    nil,
		OnProbe: func(int, bool) {},
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed sets the random source to a deterministic stream for seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.FromSeed(seed)
	}
}

// WithOnProbe registers a callback run for every tested index.
func WithOnProbe(fn func(index int, available bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Rand = rng.Or(o.Rand)
	return o
}
