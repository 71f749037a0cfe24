package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aiworkshop/grid"
)

// queueItem pairs a point with its BFS depth.
type queueItem struct {
	p     grid.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m       *grid.Map
	goal    func(grid.Point) bool
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[grid.Point]bool
	res     *Result
}

// Search runs breadth-first search on m from start until a dequeued point
// satisfies goal. The returned Result is non-nil whenever the inputs are
// valid, also together with ErrNotFound, so callers can inspect Order.
func Search(m *grid.Map, start grid.Point, goal func(grid.Point) bool, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if m.IsWall(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}

	w := &walker{
		m:       m,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[grid.Point]bool),
		res: &Result{
			Depth:  make(map[grid.Point]int),
			Parent: make(map[grid.Point]grid.Point),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// ClosestTree finds the tree reachable from start in the fewest steps.
func ClosestTree(m *grid.Map, start grid.Point, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	return Search(m, start, m.IsTree, opts...)
}

// enqueue marks p visited at depth d, records its parent and calls OnEnqueue.
func (w *walker) enqueue(p grid.Point, d int, parent *grid.Point) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until a goal is found, the queue drains, a hook
// fails, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
		}
		if w.goal(item.p) {
			path, _ := w.res.PathTo(item.p)
			w.res.Path = path
			w.res.Cost = (len(path) - 1) * w.opts.StepCost
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return ErrNotFound
}

// enqueueNeighbors enqueues each unseen passable neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.m.Neighbors(item.p) {
		if w.visited[nbr] {
			continue
		}
		parent := item.p
		w.enqueue(nbr, next, &parent)
	}
}
