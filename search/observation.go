package search

import "sort"

// TerminalKind classifies an Observation.
type TerminalKind int

const (
	// None marks a non-terminal observation.
	None TerminalKind = iota
	// PathFound marks the terminal success observation.
	PathFound
	// NoPath marks the terminal failure observation.
	NoPath
)

// String returns the kind name.
func (k TerminalKind) String() string {
	switch k {
	case None:
		return "none"
	case PathFound:
		return "path_found"
	case NoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Observation is the value emitted at every suspension point.
//
// All slices are fresh copies sorted ascending (Path is in start→goal
// order); mutating them has no effect on the engine, and the engine keeps no
// reference to an emitted Observation.
type Observation struct {
	// Step is 0 for the initial observation and increments on every Advance.
	Step int

	// Open holds ids discovered but not yet closed.
	Open []int

	// Closed holds ids whose cost is final.
	Closed []int

	// Current is the node closed by this step; valid only if HasCurrent.
	Current    int
	HasCurrent bool

	// Kind is None for intermediate observations.
	Kind TerminalKind

	// Path and Cost are set only when Kind == PathFound.
	Path []int
	Cost float64
}

// Terminal reports whether this is the last observation of the search.
func (o Observation) Terminal() bool { return o.Kind != None }

// IsOpen reports whether id is in the open set.
func (o Observation) IsOpen(id int) bool { return containsSorted(o.Open, id) }

// IsClosed reports whether id is in the closed set.
func (o Observation) IsClosed(id int) bool { return containsSorted(o.Closed, id) }

func containsSorted(xs []int, id int) bool {
	i := sort.SearchInts(xs, id)
	return i < len(xs) && xs[i] == id
}

// sortedKeys copies a set into an ascending slice.
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
