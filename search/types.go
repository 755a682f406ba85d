package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathstep/logging"
	"github.com/katalvlaran/pathstep/metric"
)

// Sentinel errors returned by the search engine.
var (
	// ErrValidation is the parent of every error New can return.
	// Use errors.Is(err, ErrValidation) to detect bad search requests.
	ErrValidation = errors.New("search: invalid search request")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrValidation)

	// ErrStartNotFound indicates the start id is not in the graph.
	ErrStartNotFound = fmt.Errorf("%w: start node not found", ErrValidation)

	// ErrGoalNotFound indicates the goal id is not in the graph.
	ErrGoalNotFound = fmt.Errorf("%w: goal node not found", ErrValidation)

	// ErrSameStartGoal indicates start == goal, which is rejected up front
	// rather than treated as a trivial one-step success.
	ErrSameStartGoal = fmt.Errorf("%w: start and goal must differ", ErrValidation)

	// ErrUnknownAlgorithm indicates an Algorithm value outside AStar/GBFS.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrValidation)

	// ErrInvalidState is returned by Advance once the engine is terminal.
	// It always signals a caller bug.
	ErrInvalidState = errors.New("search: advance on terminal engine")

	// ErrBrokenPath indicates a cycle or a dead end in the parent chain.
	// It signals an internal defect and should never surface.
	ErrBrokenPath = errors.New("search: broken parent chain")
)

// Algorithm selects the frontier priority.
type Algorithm int

const (
	// AStar orders by f = g + h.
	AStar Algorithm = iota
	// GBFS orders by f = h.
	GBFS
)

// String returns "A*" or "GBFS".
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "A*"
	case GBFS:
		return "GBFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return a == AStar || a == GBFS }

// ParseAlgorithm accepts "A*", "astar", "a-star", "GBFS", "greedy"
// (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a*", "astar", "a-star", "a_star":
		return AStar, nil
	case "gbfs", "greedy", "best-first":
		return GBFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// State is the engine lifecycle position.
type State int

const (
	// Ready means constructed (or reset) and not yet advanced.
	Ready State = iota
	// Running means the initial observation was emitted and no terminal
	// observation has been produced yet.
	Running
	// GoalFound is terminal: the path observation was emitted.
	GoalFound
	// Exhausted is terminal: the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case GoalFound:
		return "GOAL_FOUND"
	case Exhausted:
		return "EXHAUSTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further Advance is allowed.
func (s State) Terminal() bool { return s == GoalFound || s == Exhausted }

// Hooks are optional callbacks fired synchronously from Advance.
// They observe the engine; they cannot influence it.
type Hooks struct {
	// OnExpand fires when a node is closed, with its final g.
	OnExpand func(id int, g float64)

	// OnRelax fires when a cheaper path to `to` via `from` is recorded.
	OnRelax func(from, to int, g float64)

	// OnStale fires for every discarded frontier entry.
	OnStale func(id int)

	// OnTerminal fires once, with the terminal kind and the step index of
	// the terminal observation.
	OnTerminal func(kind TerminalKind, step int)
}

// Options configures an Engine.
type Options struct {
	// Heuristic estimates cost-to-goal. Default metric.Euclidean.
	Heuristic metric.Heuristic

	// EdgeCost gives the true step cost. Default metric.Euclidean.
	EdgeCost metric.EdgeCost

	// Logger receives state transitions at DEBUG and outcomes at INFO.
	// Default logging.NoOp.
	Logger logging.Logger

	// Hooks are merged over no-op defaults.
	Hooks Hooks

	// RunID tags log lines. Empty means a random UUID per search.
	RunID string
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithHeuristic overrides the estimate-to-goal function. nil is ignored.
func WithHeuristic(h metric.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithEdgeCost overrides the step-cost function. nil is ignored.
func WithEdgeCost(c metric.EdgeCost) Option {
	return func(o *Options) {
		if c != nil {
			o.EdgeCost = c
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks installs callbacks; nil fields keep their no-op defaults.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		if h.OnExpand != nil {
			o.Hooks.OnExpand = h.OnExpand
		}
		if h.OnRelax != nil {
			o.Hooks.OnRelax = h.OnRelax
		}
		if h.OnStale != nil {
			o.Hooks.OnStale = h.OnStale
		}
		if h.OnTerminal != nil {
			o.Hooks.OnTerminal = h.OnTerminal
		}
	}
}

// WithRunID fixes the id used to tag log lines.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}

// DefaultOptions returns Euclidean cost and heuristic, a silent logger and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: metric.Euclidean,
		EdgeCost:  metric.Euclidean,
		Logger:    logging.NoOp{},
		Hooks: Hooks{
			OnExpand:   func(int, float64) {},
			OnRelax:    func(int, int, float64) {},
			OnStale:    func(int) {},
			OnTerminal: func(TerminalKind, int) {},
		},
	}
}
