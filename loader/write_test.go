package loader_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/loader"
)

func TestWrite_Square(t *testing.T) {
	g, _, err := loader.Load(strings.NewReader(square))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))
	want := "4\n0 0\n1 0\n1 1\n0 1\n1 2 2 4\n2 2 1 3\n3 2 2 4\n4 2 1 3\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_RoundTripFixtures(t *testing.T) {
	fixtures := map[string]builder.Constructor{
		"grid":     builder.Grid(3, 4),
		"cycle":    builder.Cycle(7),
		"complete": builder.Complete(5),
		"random":   builder.RandomGeometric(25, 20),
	}
	for name, con := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, con)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, loader.Write(&buf, g))
			back, rep, err := loader.Load(&buf)
			require.NoError(t, err)

			assert.Empty(t, rep.Warnings)
			assert.Zero(t, rep.MirroredEdges)
			assert.Equal(t, g.Edges(), back.Edges())
			for _, id := range g.NodeIDs() {
				a, _ := g.Node(id)
				b, _ := back.Node(id)
				assert.Equal(t, a, b)
			}
		})
	}
}

func TestWrite_Rejects(t *testing.T) {
	gap := core.NewGraph()
	require.NoError(t, gap.AddNode(1, 0, 0))
	require.NoError(t, gap.AddNode(3, 0, 0))
	assert.ErrorIs(t, loader.Write(&bytes.Buffer{}, gap), loader.ErrNotWritable)

	frac := core.NewGraph()
	require.NoError(t, frac.AddNode(1, 0.5, 0))
	assert.ErrorIs(t, loader.Write(&bytes.Buffer{}, frac), loader.ErrNotWritable)

	assert.ErrorIs(t, loader.Write(&bytes.Buffer{}, nil), loader.ErrNotWritable)
}

func TestWrite_RejectsOutOfRangeCoordinates(t *testing.T) {
	for _, c := range []struct {
		name string
		x, y float64
	}{
		{"huge x", 1e30, 0},
		{"huge negative y", 0, -1e19},
		{"exactly 2^63", 1 << 63, 0},
	} {
		t.Run(c.name, func(t *testing.T) {
			g := core.NewGraph()
			require.NoError(t, g.AddNode(1, c.x, c.y))

			var buf bytes.Buffer
			assert.ErrorIs(t, loader.Write(&buf, g), loader.ErrNotWritable)
			assert.Zero(t, buf.Len())
		})
	}

	edge := core.NewGraph()
	require.NoError(t, edge.AddNode(1, -(1 << 62), 1<<62))
	assert.NoError(t, loader.Write(&bytes.Buffer{}, edge))
}
