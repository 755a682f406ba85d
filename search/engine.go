package search

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/frontier"
)

// Engine is the resumable A*/GBFS state machine. Build one with New.
type Engine struct {
	graph *core.Graph // read-only during a search
	start core.Node
	goal  core.Node
	algo  Algorithm
	opts  Options
	runID string

	state      State
	goalClosed bool // goal was closed; next Advance emits PathFound
	step       int
	expanded   int
	records    arena
	open       map[int]struct{}
	closed     map[int]struct{}
	frontier   *frontier.Frontier
	path       []int
}

// New validates the request and returns an engine in the Ready state.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. algo must be AStar or GBFS (ErrUnknownAlgorithm).
//  3. g must contain startID (ErrStartNotFound) and goalID (ErrGoalNotFound).
//  4. startID != goalID (ErrSameStartGoal).
//
// Every returned error satisfies errors.Is(err, ErrValidation).
func New(g *core.Graph, startID, goalID int, algo Algorithm, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	start, err := g.Node(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, startID)
	}
	goal, err := g.Node(goalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goalID)
	}
	if startID == goalID {
		return nil, fmt.Errorf("%w: %d", ErrSameStartGoal, startID)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		graph: g,
		start: start,
		goal:  goal,
		algo:  algo,
		opts:  cfg,
	}
	e.init()

	return e, nil
}

// init (re)builds all search-scoped state and seeds the frontier with start.
func (e *Engine) init() {
	ids := e.graph.NodeIDs()

	e.runID = e.opts.RunID
	if e.runID == "" {
		e.runID = uuid.NewString()
	}
	e.state = Ready
	e.goalClosed = false
	e.step = 0
	e.expanded = 0
	e.path = nil
	e.records = newArena(ids)
	e.open = make(map[int]struct{}, len(ids))
	e.closed = make(map[int]struct{}, len(ids))
	e.frontier = frontier.New(len(ids))

	rec := e.records[e.start.ID]
	rec.g = 0
	rec.h = e.opts.Heuristic(e.start, e.goal)
	rec.f = e.priority(rec.g, rec.h)
	e.frontier.Push(frontier.Entry{Priority: rec.f, ID: e.start.ID})
	e.open[e.start.ID] = struct{}{}

	e.opts.Logger.Debug("search %s: %s %d→%d ready (%d nodes)", e.runID, e.algo, e.start.ID, e.goal.ID, len(ids))
}

// priority is f for the configured algorithm.
func (e *Engine) priority(g, h float64) float64 {
	if e.algo == GBFS {
		return h
	}

	return g + h
}

// Reset re-arms the same search on the same graph. Allowed in any state.
// A run id supplied through WithRunID is kept; a generated one is renewed.
func (e *Engine) Reset() {
	e.init()
}

// Advance performs one unit of work and returns its Observation.
//
// Returns ErrInvalidState (wrapped with the current state) once a terminal
// observation has been emitted, and ErrBrokenPath if reconstruction fails.
func (e *Engine) Advance() (Observation, error) {
	switch {
	case e.state.Terminal():
		return Observation{}, fmt.Errorf("%w: state %s", ErrInvalidState, e.state)

	case e.state == Ready:
		e.state = Running
		e.opts.Logger.Debug("search %s: READY → RUNNING", e.runID)

		return e.snapshot(), nil

	case e.goalClosed:
		return e.finishFound()
	}

	e.step++
	cur, ok := e.popLive()
	if !ok {
		return e.finishExhausted(), nil
	}

	// Close the node; its g is final from here on.
	delete(e.open, cur.ID)
	e.closed[cur.ID] = struct{}{}
	e.expanded++
	e.opts.Hooks.OnExpand(cur.ID, e.records[cur.ID].g)

	obs := e.snapshot()
	obs.Current = cur.ID
	obs.HasCurrent = true

	if cur.ID == e.goal.ID {
		e.goalClosed = true
		e.opts.Logger.Debug("search %s: goal %d closed at step %d", e.runID, cur.ID, e.step)

		return obs, nil
	}
	if err := e.relax(cur); err != nil {
		return Observation{}, err
	}

	return obs, nil
}

// popLive extracts the cheapest non-stale frontier entry. An entry is stale
// when its node is already closed or a cheaper relaxation has superseded it.
func (e *Engine) popLive() (core.Node, bool) {
	for {
		entry, err := e.frontier.Pop()
		if errors.Is(err, frontier.ErrEmpty) {
			return core.Node{}, false
		}
		if _, done := e.closed[entry.ID]; done || entry.Priority != e.records[entry.ID].f {
			e.opts.Hooks.OnStale(entry.ID)
			continue
		}
		n, err := e.graph.Node(entry.ID)
		if err != nil {
			// Frontier ids always come from the graph; treat as stale.
			e.opts.Hooks.OnStale(entry.ID)
			continue
		}

		return n, true
	}
}

// relax examines each open neighbour of cur and records strictly cheaper
// paths, pushing a fresh frontier entry for every improvement.
func (e *Engine) relax(cur core.Node) error {
	neighbors, err := e.graph.Neighbors(cur.ID)
	if err != nil {
		return fmt.Errorf("search: neighbours of %d: %w", cur.ID, err)
	}
	curRec := e.records[cur.ID]

	for _, id := range neighbors {
		if _, done := e.closed[id]; done {
			continue
		}
		nb, err := e.graph.Node(id)
		if err != nil {
			return fmt.Errorf("search: neighbour %d of %d: %w", id, cur.ID, err)
		}

		tentative := curRec.g + e.opts.EdgeCost(cur, nb)
		rec := e.records[id]
		if tentative >= rec.g {
			continue
		}

		rec.parent = cur.ID
		rec.hasParent = true
		rec.g = tentative
		rec.h = e.opts.Heuristic(nb, e.goal)
		rec.f = e.priority(rec.g, rec.h)

		// Lazy decrease-key: older entries for id are now stale.
		e.frontier.Push(frontier.Entry{Priority: rec.f, ID: id})
		e.open[id] = struct{}{}
		e.opts.Hooks.OnRelax(cur.ID, id, tentative)
	}

	return nil
}

// finishFound emits the PathFound observation.
func (e *Engine) finishFound() (Observation, error) {
	path, err := Reconstruct(e.start.ID, e.goal.ID, e.records.parentOf)
	if err != nil {
		e.opts.Logger.Error("search %s: %v", e.runID, err)
		return Observation{}, err
	}

	e.step++
	e.state = GoalFound
	e.path = path

	obs := e.snapshot()
	obs.Kind = PathFound
	obs.Path = append([]int(nil), path...)
	obs.Cost = e.records[e.goal.ID].g

	e.opts.Hooks.OnTerminal(PathFound, e.step)
	e.opts.Logger.Info("search %s: path found, %d nodes, cost %.4f, %d expanded",
		e.runID, len(path), obs.Cost, e.expanded)

	return obs, nil
}

// finishExhausted emits the NoPath observation.
func (e *Engine) finishExhausted() Observation {
	e.state = Exhausted

	obs := e.snapshot()
	obs.Kind = NoPath

	e.opts.Hooks.OnTerminal(NoPath, e.step)
	e.opts.Logger.Info("search %s: no path from %d to %d, %d expanded",
		e.runID, e.start.ID, e.goal.ID, e.expanded)

	return obs
}

// snapshot copies the open and closed sets into a fresh Observation.
func (e *Engine) snapshot() Observation {
	return Observation{
		Step:   e.step,
		Open:   sortedKeys(e.open),
		Closed: sortedKeys(e.closed),
	}
}

// State returns the lifecycle position.
func (e *Engine) State() State { return e.state }

// Algorithm returns the configured algorithm.
func (e *Engine) Algorithm() Algorithm { return e.algo }

// Start returns the start node.
func (e *Engine) Start() core.Node { return e.start }

// Goal returns the goal node.
func (e *Engine) Goal() core.Node { return e.goal }

// RunID returns the id tagging this search's log lines.
func (e *Engine) RunID() string { return e.runID }

// Expanded returns how many nodes have been closed so far.
func (e *Engine) Expanded() int { return e.expanded }

// Costs returns a copy of id's search-scoped values.
// ok is false if id is not in the graph.
func (e *Engine) Costs(id int) (Costs, bool) {
	r, ok := e.records[id]
	if !ok {
		return Costs{}, false
	}

	return Costs{G: r.g, H: r.h, F: r.f, Parent: r.parent, HasParent: r.hasParent}, true
}
