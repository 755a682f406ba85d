// Package pathstep is a step-wise informed search engine for planar graphs:
// A* and greedy best-first search (GBFS) that advance one observable unit
// of work per call, so a renderer or a test can watch the open set, the
// closed set and the node being expanded evolve until a path is found or
// the frontier runs dry.
//
// Packages:
//
//	core/      — Graph of nodes with (x, y) coordinates and undirected edges
//	loader/    — text graph format: Load, LoadFile, Write; LoadError, warnings
//	metric/    — Euclidean edge cost and heuristic
//	frontier/  — min-priority queue with (priority, id) tie-break
//	search/    — Engine state machine: New, Advance, Reset, Run, Observations
//	dijkstra/  — reference shortest-path oracle
//	bfs/       — hop reachability and connected components
//	builder/   — deterministic fixture graphs (path, cycle, grid, complete, random)
//	gridgraph/ — text mazes as graphs
//	logging/   — leveled logger backed by kataras/golog
//	metrics/   — Prometheus counters fed by engine hooks
//	config/    — YAML + env configuration, validated
//	cmd/pathstep — CLI: run, check, generate
//
// Quick start:
//
//	g, _, err := loader.LoadFile("maze.txt")
//	eng, err := search.New(g, 1, 40, search.AStar)
//	for obs, err := range eng.Observations() {
//	    // obs.Open, obs.Closed, obs.Current, and on the last one obs.Path, obs.Cost
//	}
//
// Lifecycle of an Engine:
//
//	READY ──Advance──▶ RUNNING ──Advance…──▶ GOAL_FOUND | EXHAUSTED
//	  ▲                                          │
//	  └──────────────────Reset───────────────────┘
package pathstep
