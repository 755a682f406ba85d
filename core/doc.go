// Package core provides the immutable-after-load graph model used by the
// search engine: nodes with planar coordinates joined by undirected edges.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Node identity is a positive integer id, unique within a Graph.
//   - Every node carries an (X, Y) coordinate; edge cost is derived from it
//     (see package metric), so edges themselves carry no weight.
//   - Edges are undirected. AddEdge(a, b) records both a→b and b→a, so the
//     symmetry invariant (a neighbours b ⇔ b neighbours a) always holds.
//   - Self-loops are rejected; parallel edges collapse into one.
//
// Deterministic iteration:
//
//	NodeIDs()       ascending ids
//	Neighbors(id)   ascending neighbour ids
//	Edges()         each undirected edge once, ordered by (From, To), From < To
//
// Search-scoped values (g, h, f, parent) are NOT stored on nodes. The search
// package keeps them in a per-search arena so a loaded Graph can be shared by
// any number of sequential (or concurrent, read-only) searches.
//
// Core methods:
//
//	AddNode(id int, x, y float64) error          // O(1)
//	AddEdge(a, b int) (added bool, err error)    // O(1) amortised
//	HasEdge(a, b int) bool                       // O(1)
//	HasNode(id int) bool                         // O(1)
//	Node(id int) (Node, error)                   // O(1)
//	Neighbors(id int) ([]int, error)             // O(d)
//	NodeIDs() []int                              // O(V log V)
//	Edges() []Edge                               // O(E log E)
//	Len() int, EdgeCount() int                   // O(1)
//	Bounds() (minX, minY, maxX, maxY float64, ok bool)
//
// Errors:
//
//	ErrNilGraph        - nil *Graph passed to a consumer
//	ErrBadNodeID       - id < 1
//	ErrDuplicateNode   - AddNode with an id already present
//	ErrNodeNotFound    - missing node
//	ErrLoopNotAllowed  - AddEdge(v, v)
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// node catalog and adjacency.
package core
