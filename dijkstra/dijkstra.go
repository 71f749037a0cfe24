package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aiworkshop/grid"
)

// Search computes the cheapest path from start to the first settled point
// accepted by goal.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap) and goal non-nil (ErrNilGoal).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must be inside m (ErrStartOutOfBounds) and not a wall (ErrStartIsWall).
//
// On ErrNotFound the returned Result is still populated with Dist and
// Expanded for the explored area.
func Search(m *grid.Map, start grid.Point, goal func(grid.Point) bool, opts ...Option) (*Result, error) {
	// 1) Validate map and goal
	if m == nil {
		return nil, ErrNilMap
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Cost == nil {
		cfg.Cost = m.DefaultCost()
	}

	// 3) Validate start
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if m.IsWall(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}

	// 4) Initialize runner and run main loop.
	r := &runner{
		m:       m,
		goal:    goal,
		options: cfg,
		settled: make(map[grid.Point]bool),
		res: &Result{
			Dist: make(map[grid.Point]int),
			Prev: make(map[grid.Point]grid.Point),
		},
	}
	r.init(start)

	return r.res, r.process()
}

// ClosestTree finds the tree that is cheapest to reach from start.
func ClosestTree(m *grid.Map, start grid.Point, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	return Search(m, start, m.IsTree, opts...)
}

// runner holds the mutable state for a single execution.
type runner struct {
	m       *grid.Map
	goal    func(grid.Point) bool
	options Options
	settled map[grid.Point]bool // points whose distance is final
	pq      nodePQ
	seq     int // insertion counter for stable tie-breaking
	res     *Result
}

// init seeds the heap with start at distance zero.
func (r *runner) init(start grid.Point) {
	r.res.Dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner) push(p grid.Point, dist int) {
	heap.Push(&r.pq, &nodeItem{p: p, dist: dist, seq: r.seq})
	r.seq++
}

// process repeatedly settles the closest unsettled point until a goal is
// popped, the heap drains, or the context is cancelled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.p] {
			continue
		}

		// 2) Its distance is now final.
		r.settled[item.p] = true
		r.res.Expanded++
		r.options.OnSettle(item.p, item.dist)

		// 3) Goal test on pop guarantees minimum cost.
		if r.goal(item.p) {
			path, _ := r.res.PathTo(item.p)
			r.res.Path = path
			r.res.Cost = item.dist
			return nil
		}

		// 4) Relax neighbors.
		if err := r.relax(item.p, item.dist); err != nil {
			return err
		}
	}

	return ErrNotFound
}

// relax tries to improve the distance of each passable neighbor of u.
func (r *runner) relax(u grid.Point, du int) error {
	for _, v := range r.m.Neighbors(u) {
		if r.settled[v] {
			continue
		}
		w := r.options.Cost(r.m, u, v)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, v, w)
		}
		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict "<" keeps the first-found predecessor on equal distances
		if old, ok := r.res.Dist[v]; ok && newDist >= old {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		// lazy decrease-key: the outdated entry is skipped when popped
		r.push(v, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a point, its tentative distance and the
// insertion sequence used to break ties.
type nodeItem struct {
	p    grid.Point
	dist int
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
