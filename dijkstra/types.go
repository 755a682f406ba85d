package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pathstep/metric"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested node is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeCost indicates that the cost function returned a negative value.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrUnreachable indicates that the target cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Cost – edge cost function; must be non-negative. Default metric.Euclidean.
type Options struct {
	Cost metric.EdgeCost
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithCost overrides the edge cost function. nil is ignored.
func WithCost(c metric.EdgeCost) Option {
	return func(o *Options) {
		if c != nil {
			o.Cost = c
		}
	}
}

// DefaultOptions returns Euclidean edge costs.
func DefaultOptions() Options {
	return Options{Cost: metric.Euclidean}
}
