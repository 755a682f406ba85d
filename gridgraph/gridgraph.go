package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// NewGridGraph copies values and numbers its open cells.
// Fails with ErrEmptyGrid or ErrNonRectangular. O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		Spacing:         max(opts.Spacing, 1),
		neighborOffsets: offsets,
		ids:             make([]int, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gg.Passable(x, y) {
				gg.nodes++
				gg.ids[gg.index(x, y)] = gg.nodes
			}
		}
	}

	return gg, nil
}

// InBounds reports whether (x, y) is inside the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x, y) is an open cell.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NodeAt returns the node id ToCoreGraph assigns to cell (x,y).
// ok is false for walls and out-of-bounds cells.
func (gg *GridGraph) NodeAt(x, y int) (id int, ok bool) {
	if !gg.InBounds(x, y) {
		return 0, false
	}
	id = gg.ids[gg.index(x, y)]

	return id, id != 0
}

// NodeCount returns the number of passable cells.
func (gg *GridGraph) NodeCount() int { return gg.nodes }

// ToCoreGraph converts the passable cells into an undirected *core.Graph.
// Cell (x,y) becomes node NodeAt(x,y) at (x·Spacing, y·Spacing); each
// pair of passable neighbours under gg.Conn is joined by an edge.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	s := float64(gg.Spacing)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if id, ok := gg.NodeAt(x, y); ok {
				if err := g.AddNode(id, float64(x)*s, float64(y)*s); err != nil {
					return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, y, err)
				}
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u, ok := gg.NodeAt(x, y)
			if !ok {
				continue
			}
			for _, d := range gg.neighborOffsets {
				v, ok := gg.NodeAt(x+d[0], y+d[1])
				if !ok {
					continue
				}
				if _, err := g.AddEdge(u, v); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %d—%d: %w", u, v, err)
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
