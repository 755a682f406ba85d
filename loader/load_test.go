package loader_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/loader"
	"github.com/katalvlaran/pathstep/logging"
)

const square = `4
0 0
1 0
1 1
0 1
1 2 2 4
2 2 1 3
3 2 2 4
4 2 3 1
`

func TestLoad_Square(t *testing.T) {
	g, rep, err := loader.Load(strings.NewReader(square))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: 1, To: 2}, {From: 1, To: 4}, {From: 2, To: 3}, {From: 3, To: 4}}, g.Edges())
	n3, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: 3, X: 1, Y: 1}, n3)

	assert.Equal(t, 4, rep.Nodes)
	assert.Equal(t, 4, rep.Edges)
	assert.Zero(t, rep.MirroredEdges)
	assert.Empty(t, rep.Warnings)
}

func TestLoad_EmptyGraph(t *testing.T) {
	g, rep, err := loader.Load(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	assert.Zero(t, rep.Nodes)
}

func TestLoad_BlankLinesIgnored(t *testing.T) {
	src := "\n2\n\n0 0\n3 4\n\n1 1 2\n2 1 1\n\n"
	g, _, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 2))
}

func TestLoad_MirrorsAsymmetricEdges(t *testing.T) {
	src := "3\n0 0\n1 0\n2 0\n1 2 2 3\n2 0\n3 0\n"
	g, rep, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nbs, "reverse edge added")
	assert.True(t, g.HasEdge(3, 1))
	assert.Equal(t, 2, rep.MirroredEdges)
}

func TestLoad_DanglingNeighbourWarns(t *testing.T) {
	src := "2\n0 0\n1 0\n1 2 2 7\n2 2 1 2\n"

	var buf bytes.Buffer
	var seen []loader.Warning
	g, rep, err := loader.Load(strings.NewReader(src),
		loader.WithLogger(logging.New(&buf, logging.LevelWarn)),
		loader.WithOnWarning(func(w loader.Warning) { seen = append(seen, w) }),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	want := []loader.Warning{
		{Line: 4, NodeID: 1, NeighborID: 7, Reason: "unknown neighbour"},
		{Line: 5, NodeID: 2, NeighborID: 2, Reason: "self reference"},
	}
	assert.Equal(t, want, rep.Warnings)
	assert.Equal(t, want, seen)
	assert.Contains(t, buf.String(), "unknown neighbour 7 dropped")
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
		line int
	}{
		{"empty source", "", loader.ErrTruncated, 0},
		{"count not a number", "two\n", loader.ErrBadCount, 1},
		{"negative count", "-1\n", loader.ErrBadCount, 1},
		{"count with extra field", "2 3\n", loader.ErrBadCount, 1},
		{"truncated coordinates", "2\n0 0\n", loader.ErrTruncated, 0},
		{"truncated adjacency", "2\n0 0\n1 0\n1 1 2\n", loader.ErrTruncated, 0},
		{"coordinate one field", "1\n5\n1 0\n", loader.ErrBadCoordinate, 2},
		{"coordinate not integer", "1\n0.5 1\n1 0\n", loader.ErrBadCoordinate, 2},
		{"adjacency missing degree", "1\n0 0\n1\n", loader.ErrBadAdjacency, 3},
		{"adjacency degree mismatch", "2\n0 0\n1 0\n1 2 2\n2 1 1\n", loader.ErrBadAdjacency, 4},
		{"adjacency garbage", "2\n0 0\n1 0\n1 1 x\n2 1 1\n", loader.ErrBadAdjacency, 4},
		{"adjacency out of order", "2\n0 0\n1 0\n2 1 1\n1 1 2\n", loader.ErrIDMismatch, 4},
		{"surplus record", "1\n0 0\n1 0\n9 9\n", loader.ErrBadCount, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, rep, err := loader.Load(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, tc.kind)
			assert.ErrorIs(t, err, loader.ErrLoad)

			var le *loader.LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tc.line, le.Line)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.txt")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o600))

	g, _, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, _, err = loader.LoadFile(missing)
	assert.ErrorIs(t, err, loader.ErrLoad)
	assert.ErrorIs(t, err, loader.ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var le *loader.LoadError
	require.True(t, errors.As(err, &le))
	assert.Zero(t, le.Line)
	assert.Equal(t, missing, le.Reason)
}
