// Package core defines the Node, Edge and Graph types and their sentinel
// errors.
//
// Errors:
//
//	ErrNilGraph       - graph pointer is nil.
//	ErrBadNodeID      - node id is not positive.
//	ErrDuplicateNode  - node id already registered.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrLoopNotAllowed - self-loop requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was handed to a consumer.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrBadNodeID indicates a node id below 1.
	ErrBadNodeID = errors.New("core: node id must be positive")

	// ErrDuplicateNode indicates AddNode was called twice for the same id.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node is a graph vertex with a planar coordinate.
//
// Node is a value type; the Graph hands out copies, never pointers, so a
// caller cannot mutate the catalog behind the graph's back.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID int

	// X and Y locate the node in the plane. Loaded files use integers,
	// generators may produce fractional coordinates.
	X, Y float64
}

// Edge is one undirected connection, reported with From < To.
type Edge struct {
	From int
	To   int
}

// Graph is the in-memory undirected graph.
//
// nodes maps id → Node; adjacency maps id → set of neighbour ids. Both maps
// always hold the same key set (AddNode bootstraps the adjacency bucket).
type Graph struct {
	mu sync.RWMutex // guards nodes, adjacency and edgeCount

	nodes     map[int]Node
	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]Node),
		adjacency: make(map[int]map[int]struct{}),
	}
}
