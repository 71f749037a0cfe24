// Package grid models the tile maps used by the closest-tree and
// path-to-the-castle exercises.
//
// What:
//
//   - Map wraps a rectangular set of rows such as "#..T#", one byte per cell.
//   - Cells are walls '#', floor '.', trees 'T', or terrain: grass '1',
//     sand '2' and water '3'.
//   - A map may be scaled: with scale s every cell covers s×s points and all
//     coordinates (Point) are given in points, so a search moves one point at
//     a time. Scale 1 means points and cells coincide.
//   - Cost functions price a single step between two adjacent points.
//   - Library holds named maps (with an optional castle point) decoded from
//     YAML; Builtin returns the maps shipped with the workshop.
//
// Neighbors are 4-connected and always returned in the order left, right,
// up, down. Searches that iterate them in that order are deterministic.
//
// Complexity:
//
//   - Parse:     O(W×H) time and memory (cells, not points).
//   - Neighbors: O(1).
//   - Regions:   O(W×H) over cells.
//
// Errors:
//
//   - ErrEmptyMap:       no rows or an empty first row.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownCell:    a byte outside "#.T123".
//   - ErrBadScale:       scale < 1.
//   - ErrUnknownMap:     Library has no map with the requested name.
//   - ErrBadLibrary:     a library entry fails to parse or its castle is unusable.
package grid
