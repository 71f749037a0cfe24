package hillclimb

import (
	"errors"
	"fmt"
)

// Sentinel errors for hill climbing.
var (
	ErrNilClarity      = errors.New("hillclimb: clarity function is nil")
	ErrMaxSteps        = errors.New("hillclimb: step limit reached before a local maximum")
	ErrUnknownSpectrum = errors.New("hillclimb: unknown spectrum")
	ErrOptionViolation = errors.New("hillclimb: invalid option supplied")
)

// Result holds the outcome of Climb.
type Result struct {
	// Frequency is the local maximum reached.
	Frequency int
	// Clarity is clarity(Frequency).
	Clarity float64
	// Path lists every frequency visited, starting with the initial one.
	Path []int
}

// Option configures Climb.
type Option func(*Options)

// Options holds climbing limits and hooks.
type Options struct {
	// MaxSteps, if > 0, aborts with ErrMaxSteps after that many moves.
	MaxSteps int
	// OnStep is called after every move with the new frequency and clarity.
	OnStep func(freq int, clarity float64)

	err error
}

// DefaultOptions returns Options with no step limit and a no-op hook.
func DefaultOptions() Options {
	return Options{OnStep: func(int, float64) {}}
}

// WithMaxSteps limits the number of moves; 0 disables the limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a per-move callback.
func WithOnStep(fn func(freq int, clarity float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
