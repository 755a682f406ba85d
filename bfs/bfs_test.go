package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/bfs"
	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
)

func grid3(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), 1)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.BFS(grid3(t), 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_GridLayers checks visit order and depths on a 3×3 grid:
//
//	1 2 3
//	4 5 6
//	7 8 9
func TestBFS_GridLayers(t *testing.T) {
	res, err := bfs.BFS(grid3(t), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4, 3, 5, 7, 6, 8, 9}, res.Order)
	assert.Equal(t, 4, res.Depth[9])
	assert.Equal(t, 2, res.Depth[5])

	path, err := res.PathTo(9)
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, 1, path[0])
	assert.Equal(t, 9, path[4])
}

func TestBFS_MaxDepth(t *testing.T) {
	var enq []int
	res, err := bfs.BFS(grid3(t), 5, bfs.WithMaxDepth(1),
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }))
	require.NoError(t, err)

	assert.Equal(t, []int{5, 2, 4, 6, 8}, res.Order)
	assert.Equal(t, res.Order, enq)
	assert.False(t, res.Reached(1))
	_, err = res.PathTo(1)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(grid3(t), 1, bfs.WithOnVisit(func(id, _ int) error {
		if id == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(grid3(t), 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	for id := 1; id <= 6; id++ {
		require.NoError(t, g.AddNode(id, float64(id), 0))
	}
	for _, e := range [][2]int{{1, 4}, {4, 6}, {2, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4, 6}, {2, 3}, {5}}, comps)

	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
