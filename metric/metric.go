// Package metric holds the cost and heuristic functions used by the search
// engine.
//
// Both the true step cost (accumulated into g) and the estimate-to-goal (h)
// default to the Euclidean distance between node coordinates. Because a
// straight line is never longer than any polyline through intermediate nodes,
// the heuristic is admissible and consistent whenever edge costs are Euclidean
// too, which is what makes A* optimal here.
package metric

import (
	"math"

	"github.com/katalvlaran/pathstep/core"
)

// EdgeCost returns the cost of traversing the edge a—b.
type EdgeCost func(a, b core.Node) float64

// Heuristic estimates the remaining cost from n to goal.
type Heuristic func(n, goal core.Node) float64

// Euclidean returns the straight-line distance between a and b.
// It satisfies both EdgeCost and Heuristic.
func Euclidean(a, b core.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Zero is the trivial heuristic. With it A* degenerates to Dijkstra.
func Zero(_, _ core.Node) float64 { return 0 }

var (
	_ EdgeCost  = Euclidean
	_ Heuristic = Euclidean
	_ Heuristic = Zero
)
