package gridgraph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/gridgraph"
	"github.com/katalvlaran/pathstep/search"
)

const maze = `
S.#.
.##.
...G
`

func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseMaze(t *testing.T) {
	m, err := gridgraph.ParseMaze(strings.NewReader(maze))
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 1, 0, 1}, {1, 0, 0, 1}, {1, 1, 1, 1}}, m.Cells)
	assert.True(t, m.HasStart)
	assert.True(t, m.HasGoal)
	assert.Equal(t, gridgraph.Cell{X: 0, Y: 0}, m.Start)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 2}, m.Goal)
}

func TestParseMaze_Errors(t *testing.T) {
	_, err := gridgraph.ParseMaze(strings.NewReader("S.x\n"))
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)

	_, err = gridgraph.ParseMaze(strings.NewReader("S.S\n"))
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)

	_, err = gridgraph.ParseMaze(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestToCoreGraph_Conn4(t *testing.T) {
	m, err := gridgraph.ParseMaze(strings.NewReader(maze))
	require.NoError(t, err)
	opts := gridgraph.DefaultGridOptions()
	opts.Spacing = 10
	gg, err := gridgraph.NewGridGraph(m.Cells, opts)
	require.NoError(t, err)

	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 9, g.Len())
	assert.Equal(t, gg.NodeCount(), g.Len())

	// Row-major numbering over open cells:
	//   1 2 # 3
	//   4 # # 5
	//   6 7 8 9
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2}, {From: 1, To: 4}, {From: 3, To: 5}, {From: 4, To: 6},
		{From: 5, To: 9}, {From: 6, To: 7}, {From: 7, To: 8}, {From: 8, To: 9},
	}, g.Edges())

	id, ok := gg.NodeAt(3, 2)
	require.True(t, ok)
	assert.Equal(t, 9, id)
	n, err := g.Node(id)
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: 9, X: 30, Y: 20}, n)

	_, ok = gg.NodeAt(2, 0)
	assert.False(t, ok, "wall")
	_, ok = gg.NodeAt(-1, 0)
	assert.False(t, ok, "out of bounds")
}

func TestToCoreGraph_Conn8AddsDiagonals(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)

	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 2))

	gg4, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g4, err := gg4.ToCoreGraph()
	require.NoError(t, err)
	assert.Zero(t, g4.EdgeCount())
}

func TestConnectedComponents(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{1, 2, 6}, comps[0])
	assert.ElementsMatch(t, []int{4, 8, 9, 12, 13}, comps[1])
	assert.Equal(t, []int{10}, comps[2])

	x, y := gg.Coordinate(13)
	assert.Equal(t, [2]int{3, 2}, [2]int{x, y})
}

func TestConnectedComponents_OrthogonalTouchJoins(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2, 6, 5, 10}, comps[0])
	assert.Equal(t, []int{4, 9, 8, 13, 12}, comps[1])
}

func TestSameRegion(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.True(t, gg.SameRegion(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1}))
	assert.False(t, gg.SameRegion(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 1}))
	assert.False(t, gg.SameRegion(gridgraph.Cell{X: 2, Y: 0}, gridgraph.Cell{X: 2, Y: 0}), "wall")
	assert.False(t, gg.SameRegion(gridgraph.Cell{X: 9, Y: 9}, gridgraph.Cell{X: 0, Y: 0}), "out of range")
}

func TestMazeSearch(t *testing.T) {
	m, err := gridgraph.ParseMaze(strings.NewReader(maze))
	require.NoError(t, err)
	gg, err := gridgraph.NewGridGraph(m.Cells, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	start, _ := gg.NodeAt(m.Start.X, m.Start.Y)
	goal, _ := gg.NodeAt(m.Goal.X, m.Goal.Y)
	eng, err := search.New(g, start, goal, search.AStar)
	require.NoError(t, err)
	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 4, 6, 7, 8, 9}, res.Path)
	assert.InDelta(t, 5.0, res.Cost, 1e-12)
}
