package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyMap indicates the input has no rows or no columns.
	ErrEmptyMap = errors.New("grid: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a byte that is not a known cell kind.
	ErrUnknownCell = errors.New("grid: unknown cell")
	// ErrBadScale indicates a scale below 1.
	ErrBadScale = errors.New("grid: scale must be at least 1")
	// ErrUnknownMap indicates a missing library entry.
	ErrUnknownMap = errors.New("grid: unknown map")
	// ErrBadLibrary indicates a library entry that cannot be used.
	ErrBadLibrary = errors.New("grid: invalid map library")
)

// Cell is the kind of a single map tile.
type Cell byte

// Cell kinds as they appear in map rows.
const (
	Wall  Cell = '#'
	Floor Cell = '.'
	Tree  Cell = 'T'
	Grass Cell = '1'
	Sand  Cell = '2'
	Water Cell = '3'
)

// Valid reports whether c is one of the known cell kinds.
func (c Cell) Valid() bool {
	switch c {
	case Wall, Floor, Tree, Grass, Sand, Water:
		return true
	}
	return false
}

// IsTerrain reports whether c is grass, sand or water.
func (c Cell) IsTerrain() bool {
	return c == Grass || c == Sand || c == Water
}

// String returns the cell byte.
func (c Cell) String() string { return string(rune(c)) }

// Point is a position on a map, in scaled units.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// String formats p as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// offsets lists neighbor steps in the fixed order left, right, up, down.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Option configures Parse.
type Option func(*Options)

// Options holds map construction parameters.
type Options struct {
	// Scale is the number of points per cell side. Default 1.
	Scale int

	err error
}

// DefaultOptions returns Options with Scale 1.
func DefaultOptions() Options {
	return Options{Scale: 1}
}

// WithScale sets the number of points per cell side.
func WithScale(s int) Option {
	return func(o *Options) {
		if s < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadScale, s)
			return
		}
		o.Scale = s
	}
}
