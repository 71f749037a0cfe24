package grid

// Regions groups passable cells into 4-connected regions. Each region lists
// the centers of its cells in breadth-first order from its first cell in
// row-major order; regions themselves appear in row-major order of their
// first cell.
//
// Time:   O(W·H) over cells.
// Memory: O(W·H) for visited flags and output.
func (m *Map) Regions() [][]Point {
	seen := make([]bool, m.cols*m.rows)
	index := func(col, row int) int { return row*m.cols + col }
	var regions [][]Point

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.cells[row][col] == Wall || seen[index(col, row)] {
				continue
			}
			queue := [][2]int{{col, row}}
			seen[index(col, row)] = true
			var region []Point

			for qi := 0; qi < len(queue); qi++ {
				c, r := queue[qi][0], queue[qi][1]
				region = append(region, m.CellCenter(c, r))
				for _, d := range offsets {
					nc, nr := c+d[0], r+d[1]
					if m.CellAt(nc, nr) == Wall || seen[index(nc, nr)] {
						continue
					}
					seen[index(nc, nr)] = true
					queue = append(queue, [2]int{nc, nr})
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// Connected reports whether a and b lie in the same passable region.
func (m *Map) Connected(a, b Point) bool {
	if !m.Passable(a) || !m.Passable(b) {
		return false
	}
	ac, ar := m.CellOf(a)
	bc, br := m.CellOf(b)
	for _, region := range m.Regions() {
		var hasA, hasB bool
		for _, p := range region {
			c, r := m.CellOf(p)
			hasA = hasA || (c == ac && r == ar)
			hasB = hasB || (c == bc && r == br)
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
