package trajectory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/aiworkshop/internal/rng"
)

// Sentinel errors for trajectory generation.
var (
	ErrBadScreen         = errors.New("trajectory: screen sizes must be positive and grass lower than the screen")
	ErrBadDirections     = errors.New("trajectory: at least one direction is required")
	ErrAttemptsExhausted = errors.New("trajectory: no valid trajectory within the attempt limit")
	ErrOptionViolation   = errors.New("trajectory: invalid option supplied")
)

// DefaultMaxAttempts bounds Generate when no WithMaxAttempts is given.
const DefaultMaxAttempts = 1_000_000

// Point is a position on the screen.
type Point struct {
	X, Y float64
}

// Straight is one leg of a zigzag: direction in degrees and length in pixels.
type Straight struct {
	Angle  float64
	Length float64
}

// ZigZag is a trajectory made of straights starting from Start.
type ZigZag struct {
	Start     Point
	Straights []Straight
}

// Points converts the trajectory to the list of points where the direction
// changes, starting with Start. len(Points()) == len(Straights)+1.
func (z ZigZag) Points() []Point {
	pts := make([]Point, 0, len(z.Straights)+1)
	p := z.Start
	pts = append(pts, p)
	for _, s := range z.Straights {
		rad := s.Angle * math.Pi / 180
		p = Point{X: p.X + s.Length*math.Cos(rad), Y: p.Y + s.Length*math.Sin(rad)}
		pts = append(pts, p)
	}
	return pts
}

// Screen describes the game area. The bottom GrassHeight rows are grass.
type Screen struct {
	Width, Height, GrassHeight int
}

// Validate reports ErrBadScreen for unusable dimensions.
func (s Screen) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.GrassHeight < 0 || s.GrassHeight >= s.Height {
		return fmt.Errorf("%w: %dx%d grass=%d", ErrBadScreen, s.Width, s.Height, s.GrassHeight)
	}
	return nil
}

// horizon is the y coordinate of the grass line.
func (s Screen) horizon() float64 { return float64(s.Height - s.GrassHeight) }

func (s Screen) inside(p Point) bool {
	return p.X >= 0 && p.X < float64(s.Width) && p.Y >= 0 && p.Y < float64(s.Height)
}

func (s Screen) inGrass(p Point) bool {
	return p.X >= 0 && p.X < float64(s.Width) && p.Y >= s.horizon() && p.Y < float64(s.Height)
}

func (s Screen) inSky(p Point) bool {
	return p.X >= 0 && p.X < float64(s.Width) && p.Y >= 0 && p.Y < s.horizon()
}

// Result is the outcome of Generate.
type Result struct {
	Trajectory ZigZag
	// Attempts is the number of candidates tested, including the valid one.
	Attempts int
}

// Option configures Generate.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	Ctx         context.Context
	Rand        *rand.Rand
	MaxAttempts int

	err error
}

// DefaultOptions returns Options with a background context, the default
// random stream and DefaultMaxAttempts.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
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

// WithSeed uses a deterministic stream for seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithMaxAttempts caps the number of candidates; 0 disables the cap.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}
