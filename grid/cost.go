package grid

// Cost prices one step between adjacent points from and to.
type Cost func(m *Map, from, to Point) int

// SimpleStepCost is the price of any step on a simple map.
const SimpleStepCost = 10

// UniformCost returns a Cost that charges c for every step.
func UniformCost(c int) Cost {
	return func(*Map, Point, Point) int { return c }
}

// TerrainWeight returns the weight of standing on c: sand 3, water 9,
// everything else (grass, floor, trees) 1.
func TerrainWeight(c Cell) int {
	switch c {
	case Sand:
		return 3
	case Water:
		return 9
	default:
		return 1
	}
}

// TerrainCost charges the mean weight of the two cells, rounded down.
func TerrainCost(m *Map, from, to Point) int {
	return (TerrainWeight(m.At(from)) + TerrainWeight(m.At(to))) / 2
}

// DefaultCost returns TerrainCost for terrain maps and
// UniformCost(SimpleStepCost) otherwise.
func (m *Map) DefaultCost() Cost {
	if m.terrain {
		return TerrainCost
	}
	return UniformCost(SimpleStepCost)
}
