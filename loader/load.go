package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathstep/core"
)

const maxLineBytes = 16 << 20

// LoadFile opens path and calls Load on it. An open failure is a
// *LoadError of kind ErrOpen that also wraps the os error.
func LoadFile(path string, opts ...Option) (*core.Graph, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Reason: path, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses a graph description from r.
//
// On success the Report lists every dropped reference; on failure the
// error is a *LoadError and no graph is returned.
func Load(r io.Reader, opts ...Option) (*core.Graph, *Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{sc: bufio.NewScanner(r), cfg: cfg, report: &Report{}}
	p.sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	g, err := p.parse()
	if err != nil {
		cfg.Logger.Error("load failed: %v", err)
		return nil, nil, err
	}
	p.report.Nodes = g.Len()
	p.report.Edges = g.EdgeCount()
	cfg.Logger.Debug("loaded %d nodes, %d edges (%d mirrored, %d warnings)",
		p.report.Nodes, p.report.Edges, p.report.MirroredEdges, len(p.report.Warnings))

	return g, p.report, nil
}

// parser consumes non-blank records while tracking physical line numbers.
type parser struct {
	sc     *bufio.Scanner
	cfg    Options
	report *Report
	line   int
}

// next returns the fields of the next non-blank line.
func (p *parser) next() ([]string, bool, error) {
	for p.sc.Scan() {
		p.line++
		if fields := strings.Fields(p.sc.Text()); len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, false, &LoadError{Line: p.line + 1, Reason: err.Error(), Err: ErrTruncated}
	}

	return nil, false, nil
}

func (p *parser) parse() (*core.Graph, error) {
	fields, ok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, failf(0, ErrTruncated, "empty source, expected node count")
	}
	if len(fields) != 1 {
		return nil, failf(p.line, ErrBadCount, "expected a single node count, got %d fields", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, failf(p.line, ErrBadCount, "invalid node count %q", fields[0])
	}

	g := core.NewGraph()
	for id := 1; id <= n; id++ {
		if err = p.coordinate(g, id, n); err != nil {
			return nil, err
		}
	}

	listed := make(map[core.Edge]struct{})
	for id := 1; id <= n; id++ {
		if err = p.adjacency(g, id, n, listed); err != nil {
			return nil, err
		}
	}
	for e := range listed {
		if _, back := listed[core.Edge{From: e.To, To: e.From}]; !back {
			p.report.MirroredEdges++
		}
	}

	fields, ok, err = p.next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, failf(p.line, ErrBadCount, "unexpected record %q after %d nodes", strings.Join(fields, " "), n)
	}

	return g, nil
}

func (p *parser) coordinate(g *core.Graph, id, n int) error {
	fields, ok, err := p.next()
	if err != nil {
		return err
	}
	if !ok {
		return failf(0, ErrTruncated, "missing coordinates for node %d of %d", id, n)
	}
	if len(fields) != 2 {
		return failf(p.line, ErrBadCoordinate, "node %d: want 2 fields, got %d", id, len(fields))
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return failf(p.line, ErrBadCoordinate, "node %d: %q is not an integer pair", id, strings.Join(fields, " "))
	}

	return g.AddNode(id, float64(x), float64(y))
}

func (p *parser) adjacency(g *core.Graph, id, n int, listed map[core.Edge]struct{}) error {
	fields, ok, err := p.next()
	if err != nil {
		return err
	}
	if !ok {
		return failf(0, ErrTruncated, "missing adjacency for node %d of %d", id, n)
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		if nums[i], err = strconv.Atoi(f); err != nil {
			return failf(p.line, ErrBadAdjacency, "node %d: %q is not an integer", id, f)
		}
	}
	if len(nums) < 2 {
		return failf(p.line, ErrBadAdjacency, "node %d: want id and degree", id)
	}
	if nums[0] != id {
		return failf(p.line, ErrIDMismatch, "record %d declares id %d", id, nums[0])
	}
	k, neighbours := nums[1], nums[2:]
	if k < 0 || k != len(neighbours) {
		return failf(p.line, ErrBadAdjacency, "node %d: degree %d but %d neighbours listed", id, k, len(neighbours))
	}

	for _, nb := range neighbours {
		switch {
		case nb == id:
			p.warn(Warning{Line: p.line, NodeID: id, NeighborID: nb, Reason: "self reference"})
		case nb < 1 || nb > n:
			p.warn(Warning{Line: p.line, NodeID: id, NeighborID: nb, Reason: "unknown neighbour"})
		default:
			listed[core.Edge{From: id, To: nb}] = struct{}{}
			if _, err = g.AddEdge(id, nb); err != nil {
				return fmt.Errorf("%w: %w", ErrLoad, err)
			}
		}
	}

	return nil
}

func (p *parser) warn(w Warning) {
	p.report.Warnings = append(p.report.Warnings, w)
	p.cfg.Logger.Warn("line %d: node %d: %s %d dropped", w.Line, w.NodeID, w.Reason, w.NeighborID)
	p.cfg.OnWarning(w)
}
