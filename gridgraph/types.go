package gridgraph

import "errors"

var (
	// ErrEmptyGrid is returned for a grid or maze without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: empty grid")
	// ErrNonRectangular is returned when rows differ in length.
	ErrNonRectangular = errors.New("gridgraph: ragged rows")
	// ErrBadCell is returned for an unknown maze character or a repeated S/G.
	ErrBadCell = errors.New("gridgraph: bad maze cell")
)

// Connectivity is the set of moves between adjacent open cells.
type Connectivity int

const (
	// Conn4 moves orthogonally only.
	Conn4 Connectivity = iota
	// Conn8 also moves diagonally.
	Conn8
)

// Cell addresses a grid position; X is the column and Y the row.
type Cell struct {
	X, Y int
}

// GridOptions controls how a grid becomes a core.Graph.
type GridOptions struct {
	LandThreshold int // cells with value >= LandThreshold are open
	Conn          Connectivity
	Spacing       int // coordinate distance between adjacent cells; < 1 means 1
}

// DefaultGridOptions: open cells are >= 1, Conn4, unit spacing.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4, Spacing: 1}
}

// GridGraph is a read-only view of a rectangular grid as a graph over its
// open cells. Open cells are numbered 1..NodeCount in row-major order.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int // [y][x], copied from the input
	Conn          Connectivity
	LandThreshold int
	Spacing       int

	neighborOffsets [][2]int
	ids             []int // row-major index → node id; 0 for walls
	nodes           int
}
