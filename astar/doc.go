// Package astar finds the cheapest path to a fixed goal on a grid.Map with
// A* search, as in the path-to-the-castle exercise.
//
// The open set is a min-heap ordered by f = g + h, where g is the cost paid
// so far and h is the heuristic estimate of the rest. Ties on f go to the
// entry with the smaller h (the one closer to the goal), then to the entry
// pushed first. A point is closed when popped; the search stops when the
// goal is popped.
//
// The default heuristic is the Manhattan distance, which never overestimates
// on the workshop maps (every step costs at least 1), so the returned cost
// equals the one Dijkstra would find while expanding fewer points.
//
// Options:
//
//   - WithCost(c):       step pricing (default: m.DefaultCost()).
//   - WithHeuristic(h):  estimate from a point to the goal.
//   - WithWeight(w):     multiply the heuristic by w ≥ 0 (0 turns A* into Dijkstra).
//   - WithOnExpand(fn):  hook when a point is closed.
//   - WithContext(ctx):  cancellation, checked once per pop.
package astar
