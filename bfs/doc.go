// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node id → hops from start
//   - Parent: node id → predecessor in the BFS tree
//   - Hooks: OnEnqueue (before a node is queued) and OnVisit (may abort).
//   - Honors MaxDepth (d>0) or explicit “no limit” (d==0).
//   - Components partitions the whole graph into connected components.
//
// Why
//
//   Hop reachability answers "can start reach goal at all?" in O(V + E)
//   before a costlier informed search is stepped, and Components tells a
//   user how fragmented a loaded graph is.
//
// Determinism
//
//	core.Neighbors returns ids in ascending order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(3))
//	if res.Reached(goal) { ... }
//	comps, err := bfs.Components(g)
package bfs
