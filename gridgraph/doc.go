// Package gridgraph treats a 2D grid of cells (a maze) as a planar graph
// the search engine can step over.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable
//     LandThreshold: cells with value ≥ LandThreshold are passable, the
//     rest are walls.
//   - ParseMaze reads the text form ('#' wall, '.' open, 'S' start,
//     'G' goal) into a Maze.
//   - ToCoreGraph turns passable cells into nodes at (x·Spacing, y·Spacing),
//     numbered 1..n in row-major order, joined under Conn4 or Conn8.
//   - ConnectedComponents finds the separate open regions; SameRegion
//     tells whether two cells share one.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: ParseMaze met an unknown character or a repeated marker.
package gridgraph
