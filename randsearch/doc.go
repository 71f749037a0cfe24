// Package randsearch implements random search without replacement: pick one
// available item from a pool where every available item has an equal chance
// of being chosen.
//
// What:
//
//   - FindAvailable draws untested indices uniformly at random and returns the
//     first one whose flag is true. Tested indices are removed from the pool,
//     so each index is probed at most once per call.
//   - Distribution repeats FindAvailable and counts picks per index; it is the
//     data behind the workshop bar chart.
//
// Why uniform:
//
//	Every available index has the same chance to be the first available one
//	in a uniformly random permutation of the pool, which is exactly what the
//	draw-and-remove loop produces.
//
// Complexity:
//
//   - FindAvailable: O(n) worst-case probes, O(n) memory for the pool.
//   - Distribution:  O(rounds × n).
//
// Errors:
//
//   - ErrNoneAvailable: no flag is true (including an empty input).
//   - ErrBadRounds:     Distribution called with rounds < 0.
package randsearch
