package trajectory

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/aiworkshop/internal/rng"
)

// Valid reports whether z is an acceptable duck flight on s:
//
//  1. the first point lies inside the grass band [H-G, H);
//  2. every middle point lies in the sky [0,W)×[0,H-G);
//  3. the last point is above the grass line and outside the screen.
func (s Screen) Valid(z ZigZag) bool {
	pts := z.Points()
	if len(pts) < 2 || !s.inGrass(pts[0]) {
		return false
	}
	last := len(pts) - 1
	for _, p := range pts[1:last] {
		if !s.inSky(p) {
			return false
		}
	}
	end := pts[last]
	if end.Y >= s.horizon() {
		return false
	}
	return !s.inside(end)
}

// Start returns the launch point: horizontally centred, one pixel under the
// grass line.
func (s Screen) Start() Point {
	return Point{X: float64(s.Width / 2), Y: float64(s.Height-s.GrassHeight) + 1}
}

// Generate draws random zigzags with `directions` straights until one passes
// Screen.Valid. Angles are uniform in [0,360); lengths uniform in
// [W/10, W/2].
func Generate(s Screen, directions int, opts ...Option) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if directions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDirections, directions)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	r := rng.Or(o.Rand)

	minLen := float64(s.Width / 10)
	maxLen := float64(s.Width / 2)
	start := s.Start()

	for attempt := 1; o.MaxAttempts == 0 || attempt <= o.MaxAttempts; attempt++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		z := candidate(r, start, directions, minLen, maxLen)
		if s.Valid(z) {
			return &Result{Trajectory: z, Attempts: attempt}, nil
		}
	}
	return nil, fmt.Errorf("%w: %d attempts", ErrAttemptsExhausted, o.MaxAttempts)
}

func candidate(r *rand.Rand, start Point, n int, minLen, maxLen float64) ZigZag {
	straights := make([]Straight, n)
	for i := range straights {
		straights[i] = Straight{
			Angle:  rng.Uniform(r, 0, 360),
			Length: rng.Uniform(r, minLen, maxLen),
		}
	}
	return ZigZag{Start: start, Straights: straights}
}
