package search

import "math"

// record is the search-scoped state of one node.
type record struct {
	g, h, f   float64
	parent    int
	hasParent bool
}

// undiscovered is the state every node starts a search in.
func undiscovered() record {
	return record{g: math.Inf(1), h: 0, f: math.Inf(1)}
}

// arena maps node id → record for exactly one search. A fresh arena is
// built on every (re)initialisation, so no value can leak between runs.
type arena map[int]*record

func newArena(ids []int) arena {
	a := make(arena, len(ids))
	for _, id := range ids {
		r := undiscovered()
		a[id] = &r
	}

	return a
}

// parentOf adapts the arena to ParentFunc.
func (a arena) parentOf(id int) (int, bool) {
	r, ok := a[id]
	if !ok || !r.hasParent {
		return 0, false
	}

	return r.parent, true
}

// Costs is a read-only copy of a node's search-scoped values.
type Costs struct {
	G, H, F   float64
	Parent    int
	HasParent bool
}
