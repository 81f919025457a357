// Package gridgraph treats a 2D grid of ASCII cells as a graph, enabling
// row-major indexing, neighbor enumeration, and component analysis.
//
// What:
//
//   - GridGraph wraps a rectangular grid parsed from newline-separated text.
//   - Cells are addressed by row-major index, which keeps search states small.
//   - Identifies connected components of cells accepted by a passable predicate.
//
// Why:
//
//   - Puzzle mazes: walls, doors and keys are just bytes; searches decide what
//     is walkable at each moment.
//   - Reachability checks: a target outside the start's component can be
//     rejected before any expensive search runs.
//
// Complexity:
//
//   - Parse:               O(W×H), Memory: O(W×H).
//   - Neighbors:           O(d)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
