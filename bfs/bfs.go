package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathstep/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, startID)
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  startID,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(startID, 0, 0, false)

	return w.res, w.loop()
}

// enqueue marks id seen at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int, hasParent bool) {
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbours of %d: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next, item.id, true)
			}
		}
	}

	return nil
}

// Components partitions g into connected components. Each component lists
// its ids ascending; components are ordered by their smallest id.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int]struct{}, g.Len())
	var comps [][]int
	for _, id := range g.NodeIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := make([]int, 0, len(res.Order))
		for _, v := range res.Order {
			seen[v] = struct{}{}
			comp = append(comp, v)
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
