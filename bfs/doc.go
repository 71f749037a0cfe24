// Package bfs provides breadth-first search over a grid.Map, used to find
// the closest tree on a simple map where every step costs the same.
//
// What
//
//   - Explore points in non-decreasing step count from a start point.
//   - Stop at the first dequeued point accepted by the goal predicate.
//   - Return a Result containing:
//   - Path: start → goal, both inclusive
//   - Order: dequeue sequence
//   - Depth: map from point → steps from start
//   - Parent: map from point → its predecessor in the BFS tree
//   - Hooks OnEnqueue and OnVisit (the latter may abort with an error).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	grid.Map.Neighbors returns left, right, up, down, and points are marked
//	visited when enqueued, so the visit order and the returned path are fully
//	reproducible. Among equally short paths the one discovered first wins.
//
// Complexity (N = passable points)
//
//   - Time:   O(N)
//   - Memory: O(N) for queue, Depth map and Parent map.
//
// Usage
//
//	res, err := bfs.ClosestTree(m, grid.Pt(1, 1))
//	if errors.Is(err, bfs.ErrNotFound) {
//		// no tree reachable; res.Order still lists the explored points
//	}
//
// Errors
//
//   - ErrNilMap            if the map pointer is nil.
//   - ErrStartOutOfBounds  if start lies outside the map.
//   - ErrStartIsWall       if start is a wall.
//   - ErrOptionViolation   for an invalid Option (e.g. negative MaxDepth).
//   - ErrNotFound          if no goal is reachable.
//   - Wrapped errors from OnVisit and context cancellation.
package bfs
