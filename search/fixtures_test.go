package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
)

// node is a compact fixture literal: id and integer coordinates.
type node struct{ id, x, y int }

// mustGraph builds a graph from nodes and undirected edges.
func mustGraph(t testing.TB, nodes []node, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n.id, float64(n.x), float64(n.y)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// squareGraph is the unit square 1(0,0) 2(1,0) 3(1,1) 4(0,1) wired as a ring.
func squareGraph(t testing.TB) *core.Graph {
	return mustGraph(t,
		[]node{{1, 0, 0}, {2, 1, 0}, {3, 1, 1}, {4, 0, 1}},
		[][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}},
	)
}

// singleEdgeGraph is 1(0,0) — 2(3,4), length 5.
func singleEdgeGraph(t testing.TB) *core.Graph {
	return mustGraph(t, []node{{1, 0, 0}, {2, 3, 4}}, [][2]int{{1, 2}})
}

// greedyTrapGraph lures GBFS through 2, which is nearer the goal 4 but far
// from the start; the cheap route runs through 3.
func greedyTrapGraph(t testing.TB) *core.Graph {
	return mustGraph(t,
		[]node{{1, 0, 0}, {2, 9, 6}, {3, 3, 1}, {4, 10, 0}},
		[][2]int{{1, 2}, {2, 4}, {1, 3}, {3, 4}},
	)
}

// rediscoveryGraph forces node 4 to be relaxed twice while open (first via
// 2, then more cheaply via 3). Goal 5 is isolated, so the search exhausts
// and the superseded entry for 4 is eventually popped as stale.
func rediscoveryGraph(t testing.TB) *core.Graph {
	return mustGraph(t,
		[]node{{1, 0, 0}, {2, 1, 0}, {3, 1, 4}, {4, 2, 5}, {5, 100, 0}},
		[][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}},
	)
}
