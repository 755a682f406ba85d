package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/frontier"
)

// Distances computes shortest distances from source to every node.
//
// Returns:
//
//   - dist: node id → minimum cost (math.Inf(1) if unreachable).
//   - prev: node id → predecessor on one shortest path; absent for the
//     source and for unreachable nodes.
//   - err:  ErrNilGraph, ErrVertexNotFound or ErrNegativeCost.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.NodeIDs()
	r := &runner{
		g:       g,
		cost:    cfg.Cost,
		dist:    make(map[int]float64, len(ids)),
		prev:    make(map[int]int, len(ids)),
		visited: make(map[int]bool, len(ids)),
		pq:      frontier.New(len(ids)),
	}
	r.init(ids, source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum cost from source to target and one path
// realising it, in source→target order.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (float64, []int, error) {
	dist, prev, err := Distances(g, source, opts...)
	if err != nil {
		return 0, nil, err
	}
	d, ok := dist[target]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, target)
	}
	if math.IsInf(d, 1) {
		return 0, nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, target)
	}

	path := []int{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	cost    func(a, b core.Node) float64
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      *frontier.Frontier
}

// init sets every distance to +∞ and pushes the source at 0.
func (r *runner) init(ids []int, source int) {
	for _, v := range ids {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	r.pq.Push(frontier.Entry{Priority: 0, ID: source})
}

// process repeatedly extracts the closest unvisited node and relaxes it.
func (r *runner) process() error {
	for {
		item, err := r.pq.Pop()
		if errors.Is(err, frontier.ErrEmpty) {
			return nil
		}
		// Skip stale heap entries.
		if r.visited[item.ID] {
			continue
		}
		r.visited[item.ID] = true

		if err = r.relax(item.ID); err != nil {
			return err
		}
	}
}

// relax improves distances to u's neighbours where possible.
func (r *runner) relax(u int) error {
	from, err := r.g.Node(u)
	if err != nil {
		return fmt.Errorf("dijkstra: node %d: %w", u, err)
	}
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		to, err := r.g.Node(v)
		if err != nil {
			return fmt.Errorf("dijkstra: node %d: %w", v, err)
		}
		w := r.cost(from, to)
		if w < 0 {
			return fmt.Errorf("%w: edge %d—%d cost=%g", ErrNegativeCost, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.Push(frontier.Entry{Priority: newDist, ID: v})
	}

	return nil
}
