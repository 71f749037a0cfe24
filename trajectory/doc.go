// Package trajectory generates zigzag flight paths for a duck-hunt style game
// using generate-and-test.
//
// What:
//
//   - ZigZag is a start point plus a list of straights (angle in degrees,
//     length). Points() unrolls it into the turning points.
//   - Screen.Valid is the test: the duck rises out of the grass, every turn
//     happens in the sky, and the last straight leaves the screen above the
//     grass line.
//   - Generate is the generator loop: draw random straights, test, repeat.
//
// Coordinates:
//
//	(0,0) is the top-left corner. Angle 0 points right, 90 down, 180 left
//	and 270 up.
//
// Options:
//
//   - WithRand / WithSeed:   random source.
//   - WithMaxAttempts(n):    stop after n candidates (0 = unlimited).
//   - WithContext(ctx):      cancellation, checked once per candidate.
//
// Errors:
//
//   - ErrBadScreen:          non-positive sizes or grass not below the sky.
//   - ErrBadDirections:      fewer than one straight requested.
//   - ErrAttemptsExhausted:  no valid candidate within MaxAttempts.
//   - ErrOptionViolation:    negative MaxAttempts.
package trajectory
