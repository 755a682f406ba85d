// Package search implements a step-wise A* / Greedy Best-First Search engine
// over a core.Graph.
//
// Overview:
//
//   - The Engine is a pull-driven state machine. Every call to Advance does
//     exactly one unit of work and returns an immutable Observation; the
//     caller owns pacing entirely. There are no goroutines, timers or
//     callbacks into caller code other than the optional Hooks.
//   - A* orders the frontier by f = g + h and is cost-optimal with the
//     default Euclidean heuristic. GBFS orders by f = h only: it is usually
//     faster and never guaranteed optimal.
//   - Ties in f are broken by node id, so identical input always produces an
//     identical expansion order.
//
// States:
//
//	Ready ──Advance──▶ Running ──Advance…──▶ GoalFound | Exhausted
//
// Advance on a terminal engine returns ErrInvalidState. Reset re-arms the
// same search on the same graph without reloading it.
//
// Step protocol:
//
//  1. The first Advance emits the initial observation: open = {start},
//     closed = {}, no current node.
//  2. Each following Advance pops the cheapest live frontier entry (stale
//     entries are dropped silently inside the same call), closes the node,
//     emits an observation with it as Current, then relaxes its neighbours.
//  3. The Advance after the goal was closed emits the terminal PathFound
//     observation carrying the path and its cost.
//  4. If the frontier runs dry first, Advance emits the terminal NoPath
//     observation.
//
// Per-search state (g, h, f, parent) lives in an arena owned by the Engine,
// never on the graph, so one loaded graph can serve any number of searches.
// An Engine itself is not safe for concurrent use.
//
// Error handling (sentinel errors):
//
//   - ErrValidation and its refinements (ErrNilGraph, ErrStartNotFound,
//     ErrGoalNotFound, ErrSameStartGoal, ErrUnknownAlgorithm) from New.
//   - ErrInvalidState when advancing a terminal engine.
//   - ErrBrokenPath if the parent chain is corrupt during reconstruction.
//
// Example:
//
//	eng, err := search.New(g, 1, 3, search.AStar)
//	if err != nil {
//	    return err
//	}
//	for {
//	    obs, err := eng.Advance()
//	    if err != nil {
//	        return err
//	    }
//	    render(obs)
//	    if obs.Terminal() {
//	        break
//	    }
//	}
package search
