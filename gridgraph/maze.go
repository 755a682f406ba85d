package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze cell characters.
const (
	CharWall  = '#'
	CharOpen  = '.'
	CharStart = 'S'
	CharGoal  = 'G'
)

// Maze is a parsed text maze: 0 for walls, 1 for open cells.
type Maze struct {
	Cells    [][]int
	Start    Cell
	Goal     Cell
	HasStart bool
	HasGoal  bool
}

// ParseMaze reads one row per line. Blank lines and trailing whitespace
// are ignored; at most one 'S' and one 'G' may appear. Row lengths are not
// checked here (NewGridGraph does that).
func ParseMaze(r io.Reader) (*Maze, error) {
	m := &Maze{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		y := len(m.Cells)
		row := make([]int, 0, len(text))
		for x, ch := range []rune(text) {
			switch ch {
			case CharWall:
				row = append(row, 0)
				continue
			case CharOpen:
			case CharStart:
				if m.HasStart {
					return nil, fmt.Errorf("%w: line %d: second %q", ErrBadCell, line, ch)
				}
				m.Start, m.HasStart = Cell{X: x, Y: y}, true
			case CharGoal:
				if m.HasGoal {
					return nil, fmt.Errorf("%w: line %d: second %q", ErrBadCell, line, ch)
				}
				m.Goal, m.HasGoal = Cell{X: x, Y: y}, true
			default:
				return nil, fmt.Errorf("%w: line %d col %d: %q", ErrBadCell, line, x+1, ch)
			}
			row = append(row, 1)
		}
		m.Cells = append(m.Cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	if len(m.Cells) == 0 {
		return nil, ErrEmptyGrid
	}

	return m, nil
}
