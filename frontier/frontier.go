// Package frontier implements the min-priority open list used by the search
// engine.
//
// Entries are ordered by Priority ascending, then by ID ascending, so two
// entries with equal priority always come out in the same order regardless
// of insertion order.
//
// The frontier uses a “lazy decrease-key” strategy: when a cheaper path to a
// node is found the caller pushes a fresh entry and leaves the old one in
// place. Several entries for one node may therefore coexist; the consumer is
// responsible for discarding stale ones when they surface.
//
// Complexity:
//
//   - Push: O(log N)
//   - Pop:  O(log N)
//   - Peek, Len: O(1)
//   - Entries: O(N log N) (sorted copy)
//
// where N is the number of entries, including stale ones (N ≤ V + E).
package frontier

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrEmpty is returned by Pop and Peek on an empty frontier.
var ErrEmpty = errors.New("frontier: empty")

// Entry is one (priority, tie-break, node) triple. The node id doubles as the
// tie-break key: it is stable and unique per node.
type Entry struct {
	Priority float64
	ID       int
}

// less reports whether a should be extracted before b.
func less(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return a.ID < b.ID
}

// Frontier is a binary min-heap of Entry values. The zero value is ready to
// use. It is not safe for concurrent use.
type Frontier struct {
	h entryHeap
}

// New returns an empty frontier with room for capacity entries.
func New(capacity int) *Frontier {
	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Push inserts e. Duplicate ids are allowed.
func (f *Frontier) Push(e Entry) {
	heap.Push(&f.h, e)
}

// Pop removes and returns the minimum entry, or ErrEmpty.
func (f *Frontier) Pop() (Entry, error) {
	if len(f.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return heap.Pop(&f.h).(Entry), nil
}

// Peek returns the minimum entry without removing it, or ErrEmpty.
func (f *Frontier) Peek() (Entry, error) {
	if len(f.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return f.h[0], nil
}

// Len returns the number of entries, stale ones included.
func (f *Frontier) Len() int { return len(f.h) }

// Entries returns a copy of all entries in extraction order.
func (f *Frontier) Entries() []Entry {
	out := make([]Entry, len(f.h))
	copy(out, f.h)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

// entryHeap adapts []Entry to container/heap.
type entryHeap []Entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by priority, then id.
func (h entryHeap) Less(i, j int) bool { return less(h[i], h[j]) }

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum to the end.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
