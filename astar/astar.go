package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aiworkshop/grid"
)

// PathToCastle returns the cheapest path on m from start to castle.
func PathToCastle(m *grid.Map, start, castle grid.Point, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Cost == nil {
		o.Cost = m.DefaultCost()
	}
	switch {
	case !m.InBounds(start):
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	case !m.InBounds(castle):
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, castle)
	case m.IsWall(start):
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	case m.IsWall(castle):
		return nil, fmt.Errorf("%w: %v", ErrGoalIsWall, castle)
	}

	s := &searcher{
		m:      m,
		goal:   castle,
		opts:   o,
		g:      map[grid.Point]int{start: 0},
		prev:   make(map[grid.Point]grid.Point),
		closed: make(map[grid.Point]bool),
	}
	heap.Init(&s.open)
	s.push(start, 0)

	return s.run()
}

// searcher holds the mutable state of one A* run.
type searcher struct {
	m      *grid.Map
	goal   grid.Point
	opts   Options
	g      map[grid.Point]int
	prev   map[grid.Point]grid.Point
	closed map[grid.Point]bool
	open   openSet
	seq    int
	res    Result
}

func (s *searcher) h(p grid.Point) int {
	return s.opts.Weight * s.opts.Heuristic(p, s.goal)
}

func (s *searcher) push(p grid.Point, g int) {
	h := s.h(p)
	heap.Push(&s.open, &entry{p: p, g: g, h: h, f: g + h, seq: s.seq})
	s.seq++
}

func (s *searcher) run() (*Result, error) {
	for s.open.Len() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		cur := heap.Pop(&s.open).(*entry)
		if s.closed[cur.p] {
			continue
		}
		s.closed[cur.p] = true
		s.res.Expanded++
		s.opts.OnExpand(cur.p, cur.g, cur.h)

		if cur.p == s.goal {
			s.res.Cost = cur.g
			s.res.Path = s.pathTo(cur.p)
			return &s.res, nil
		}

		for _, nb := range s.m.Neighbors(cur.p) {
			if s.closed[nb] {
				continue
			}
			w := s.opts.Cost(s.m, cur.p, nb)
			if w < 0 {
				return nil, fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, cur.p, nb, w)
			}
			ng := cur.g + w
			if old, ok := s.g[nb]; ok && ng >= old {
				continue
			}
			s.g[nb] = ng
			s.prev[nb] = cur.p
			s.push(nb, ng)
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrNoPath, s.goal)
}

func (s *searcher) pathTo(p grid.Point) []grid.Point {
	path := []grid.Point{p}
	for {
		q, ok := s.prev[p]
		if !ok {
			break
		}
		path = append(path, q)
		p = q
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// entry is an open-set item.
type entry struct {
	p       grid.Point
	g, h, f int
	seq     int
}

// openSet is a min-heap ordered by f, then h, then seq.
type openSet []*entry

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	a, b := o[i], o[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*entry)) }

func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	it := old[n-1]
	*o = old[:n-1]
	return it
}
