package grid

import (
	"fmt"
)

// Map is an immutable tile map. Build it with Parse.
type Map struct {
	cells   [][]Cell
	cols    int
	rows    int
	scale   int
	terrain bool
}

// Parse builds a Map from rows of cell bytes. Every row must have the same
// length and contain only known cells.
// Complexity: O(W×H).
func Parse(rows []string, opts ...Option) (*Map, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	w := len(rows[0])
	m := &Map{cells: make([][]Cell, len(rows)), cols: w, rows: len(rows), scale: o.Scale}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		m.cells[y] = make([]Cell, w)
		for x := 0; x < w; x++ {
			c := Cell(row[x])
			if !c.Valid() {
				return nil, fmt.Errorf("%w: %q at column %d, row %d", ErrUnknownCell, row[x], x, y)
			}
			if c.IsTerrain() {
				m.terrain = true
			}
			m.cells[y][x] = c
		}
	}
	return m, nil
}

// MustParse is like Parse but panics on error. It is meant for fixed maps in
// tests and examples.
func MustParse(rows []string, opts ...Option) *Map {
	m, err := Parse(rows, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the map width in points.
func (m *Map) Width() int { return m.cols * m.scale }

// Height returns the map height in points.
func (m *Map) Height() int { return m.rows * m.scale }

// Scale returns the number of points per cell side.
func (m *Map) Scale() int { return m.scale }

// Columns returns the number of cell columns.
func (m *Map) Columns() int { return m.cols }

// Rows returns the number of cell rows.
func (m *Map) Rows() int { return m.rows }

// Terrain reports whether the map contains grass, sand or water.
func (m *Map) Terrain() bool { return m.terrain }

// InBounds reports whether p lies within the map.
// Complexity: O(1).
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width() && p.Y >= 0 && p.Y < m.Height()
}

// At returns the cell covering p. Points outside the map read as Wall.
// Complexity: O(1).
func (m *Map) At(p Point) Cell {
	if !m.InBounds(p) {
		return Wall
	}
	return m.cells[p.Y/m.scale][p.X/m.scale]
}

// CellAt returns the cell in column col and row row, Wall if out of range.
func (m *Map) CellAt(col, row int) Cell {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return Wall
	}
	return m.cells[row][col]
}

// IsWall reports whether p is a wall or outside the map.
func (m *Map) IsWall(p Point) bool { return m.At(p) == Wall }

// IsTree reports whether p is a tree.
func (m *Map) IsTree(p Point) bool { return m.At(p) == Tree }

// IsFloor reports whether p is open ground: '.' on simple maps, grass, sand
// or water on terrain maps. Trees are not floor.
func (m *Map) IsFloor(p Point) bool {
	c := m.At(p)
	return c == Floor || c.IsTerrain()
}

// Passable reports whether a search may stand on p.
func (m *Map) Passable(p Point) bool { return !m.IsWall(p) }

// Neighbors returns the passable 4-neighbors of p in the order left, right,
// up, down.
// Complexity: O(1).
func (m *Map) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d[0], d[1])
		if m.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// CellCenter returns the point in the middle of cell (col, row).
func (m *Map) CellCenter(col, row int) Point {
	return Point{X: col*m.scale + m.scale/2, Y: row*m.scale + m.scale/2}
}

// CellOf returns the column and row of the cell covering p.
func (m *Map) CellOf(p Point) (col, row int) {
	return p.X / m.scale, p.Y / m.scale
}

// Points returns the center of every cell accepted by keep, in row-major
// order.
func (m *Map) Points(keep func(Cell) bool) []Point {
	var out []Point
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if keep(m.cells[row][col]) {
				out = append(out, m.CellCenter(col, row))
			}
		}
	}
	return out
}

// String returns the map rows joined by newlines.
func (m *Map) String() string {
	b := make([]byte, 0, (m.cols+1)*m.rows)
	for row := 0; row < m.rows; row++ {
		if row > 0 {
			b = append(b, '\n')
		}
		for col := 0; col < m.cols; col++ {
			b = append(b, byte(m.cells[row][col]))
		}
	}
	return string(b)
}
