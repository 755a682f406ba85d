package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/pathstep/core"
)

// Write serialises g in the format Load reads.
//
// g's ids must be exactly 1..n and every coordinate integral; otherwise
// ErrNotWritable is returned and nothing is written.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: %w", ErrNotWritable, core.ErrNilGraph)
	}
	ids := g.NodeIDs()
	nodes := make([]core.Node, len(ids))
	for i, id := range ids {
		if id != i+1 {
			return fmt.Errorf("%w: ids must be 1..%d, found %d", ErrNotWritable, len(ids), id)
		}
		nodes[i], _ = g.Node(id)
		if !integral(nodes[i].X) || !integral(nodes[i].Y) {
			return fmt.Errorf("%w: node %d coordinates (%g, %g) are not 64-bit integers",
				ErrNotWritable, id, nodes[i].X, nodes[i].Y)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(bw, "%d %d\n", int64(n.X), int64(n.Y))
	}
	for _, n := range nodes {
		nbs, _ := g.Neighbors(n.ID)
		line := strconv.AppendInt(nil, int64(n.ID), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(len(nbs)), 10)
		for _, nb := range nbs {
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(nb), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// int64Bound is 2^63; every float64 in [-int64Bound, int64Bound) converts
// to int64 exactly once it has no fractional part.
const int64Bound = 1 << 63

func integral(v float64) bool {
	return v == math.Trunc(v) && v >= -int64Bound && v < int64Bound
}
