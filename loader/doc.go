// Package loader reads and writes the line-oriented graph description
// consumed by the search engine.
//
// Format (one record per non-blank line):
//
//	n                         node count, n ≥ 0
//	x_1 y_1                   integer coordinates of node 1
//	...
//	x_n y_n                   integer coordinates of node n
//	id_1 k a_1 ... a_k        node id, degree k, then k neighbour ids
//	...
//	id_n k a_1 ... a_k
//
// Rules enforced by Load:
//
//   - The i-th adjacency record must declare id i (ErrIDMismatch).
//   - k must equal the number of listed neighbours (ErrBadAdjacency).
//   - Neighbour ids outside 1..n, and self references, are dropped and
//     reported as a Warning; the graph still loads.
//   - An edge listed by only one endpoint is mirrored, since the model is
//     undirected. Report.MirroredEdges counts such edges.
//   - Missing records yield ErrTruncated; surplus records yield ErrBadCount.
//
// Every fatal error is a *LoadError and satisfies errors.Is(err, ErrLoad).
//
// Write emits the same format for graphs whose ids are exactly 1..n and
// whose coordinates are integral, so Load(Write(g)) reproduces g.
package loader
