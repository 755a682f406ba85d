// File: methods.go
// Role: Node and edge lifecycle plus read-only queries.
// Determinism:
//   - NodeIDs() and Neighbors() return ids sorted ascending.
//   - Edges() returns each undirected edge once, sorted by (From, To).
// Concurrency:
//   - Mutators take mu for writing; queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddNode registers a node with the given id and coordinate.
//
// Unlike edge insertion, AddNode is not idempotent: a second call with the
// same id returns ErrDuplicateNode so loaders can detect conflicting records.
//
// Complexity: O(1) amortised.
func (g *Graph) AddNode(id int, x, y float64) error {
	if id < 1 {
		return fmt.Errorf("%w: %d", ErrBadNodeID, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = Node{ID: id, X: x, Y: y}
	g.adjacency[id] = make(map[int]struct{})

	return nil
}

// AddEdge connects a and b in both directions.
//
// Adding an edge that already exists is a no-op; the reported bool is true
// only when a new undirected edge was created.
//
// Errors:
//   - ErrLoopNotAllowed if a == b.
//   - ErrNodeNotFound if either endpoint is missing.
//
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(a, b int) (bool, error) {
	if a == b {
		return false, fmt.Errorf("%w: %d", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return false, fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return false, fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	if _, exists := g.adjacency[a][b]; exists {
		return false, nil
	}

	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++

	return true, nil
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether a and b are adjacent. Symmetric by construction.
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// Node returns a copy of the node registered under id.
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// Neighbors returns the ids adjacent to id in ascending order.
// The returned slice is a fresh copy.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	out := make([]int, 0, len(bucket))
	for nb := range bucket {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out, nil
}

// NodeIDs returns every node id in ascending order.
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns each undirected edge exactly once with From < To,
// ordered by From then To.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for a, bucket := range g.adjacency {
		for b := range bucket {
			if a < b {
				out = append(out, Edge{From: a, To: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Bounds returns the bounding box of all node coordinates.
// ok is false for an empty graph.
func (g *Graph) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.nodes {
		if !ok {
			minX, maxX, minY, maxY = n.X, n.X, n.Y, n.Y
			ok = true
			continue
		}
		minX = min(minX, n.X)
		maxX = max(maxX, n.X)
		minY = min(minY, n.Y)
		maxY = max(maxY, n.Y)
	}

	return minX, minY, maxX, maxY, ok
}
