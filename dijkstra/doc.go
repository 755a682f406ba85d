// Package dijkstra computes exact shortest paths over a core.Graph with
// Euclidean (or caller-supplied) edge costs.
//
// Overview:
//
//   - It serves as the reference oracle for the step-wise search engine:
//     A* with an admissible heuristic must report the same cost.
//   - It relies on a min-heap (package frontier) to always expand the
//     next-closest node, with the same “lazy decrease-key” strategy: duplicate
//     entries are pushed and stale ones skipped when popped.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(E) worst-case heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source or target missing.
//   - ErrNegativeCost:   the cost function produced a negative value.
//   - ErrUnreachable:    ShortestPath target not reachable from source.
//
// API reference:
//
//	func Distances(g *core.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error)
//	func ShortestPath(g *core.Graph, source, target int, opts ...Option) (float64, []int, error)
//
// Thread safety:
//
//   - Read-only over g; safe to run concurrently with other readers.
package dijkstra
