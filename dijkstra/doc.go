// Package dijkstra finds minimum-cost paths on a grid.Map whose steps have
// different prices, such as the terrain maps of the closest-tree exercise.
//
// A point is settled when it is popped from a min-heap; the goal predicate is
// tested at that moment, so the first goal popped is the cheapest one. Ties
// in the heap are broken by insertion order, which together with the fixed
// neighbor order of grid.Map makes every result reproducible.
//
// Complexity (N = passable points):
//
//   - Time:  O(N log N). Each point is settled once; each relaxation may push
//     a new heap entry.
//   - Space: O(N) for the distance and predecessor maps, O(4N) worst-case
//     for heap entries under lazy decrease-key.
//
// Options:
//
//   - WithCost(c):         step pricing (default: m.DefaultCost()).
//   - WithMaxDistance(d):  points farther than d are not explored (d ≥ 0).
//   - WithOnSettle(fn):    hook when a point's distance becomes final.
//   - WithContext(ctx):    cancellation, checked once per pop.
//
// Errors:
//
//   - ErrNilMap, ErrStartOutOfBounds, ErrStartIsWall: invalid input.
//   - ErrNegativeCost:    the cost function priced a step below zero.
//   - ErrOptionViolation: invalid Option (e.g. negative MaxDistance).
//   - ErrNotFound:        no goal within reach.
package dijkstra
