package loader

import (
	"errors"
	"fmt"
)

// ErrLoad is the parent of every error Load and LoadFile report.
var ErrLoad = errors.New("loader: malformed graph source")

// Load failure kinds. Each wraps ErrLoad.
var (
	// ErrOpen indicates LoadFile could not open its path.
	ErrOpen = fmt.Errorf("%w: cannot open", ErrLoad)

	// ErrTruncated indicates the source ended before all 2n+1 records.
	ErrTruncated = fmt.Errorf("%w: truncated", ErrLoad)

	// ErrBadCount indicates a missing/negative node count, or records
	// beyond the 2n+1 the count announces.
	ErrBadCount = fmt.Errorf("%w: record count mismatch", ErrLoad)

	// ErrBadCoordinate indicates a coordinate record that is not two integers.
	ErrBadCoordinate = fmt.Errorf("%w: malformed coordinate", ErrLoad)

	// ErrBadAdjacency indicates a malformed neighbour record.
	ErrBadAdjacency = fmt.Errorf("%w: malformed adjacency", ErrLoad)

	// ErrIDMismatch indicates an adjacency record whose declared id differs
	// from its position.
	ErrIDMismatch = fmt.Errorf("%w: adjacency id out of order", ErrLoad)
)

// ErrNotWritable indicates a graph the text format cannot represent.
var ErrNotWritable = errors.New("loader: graph not representable")

// LoadError locates a fatal load failure.
type LoadError struct {
	Line   int    // 1-based physical line; 0 when not tied to a line
	Reason string // human-readable detail
	Err    error  // one of the Err* kinds above
}

// Error implements error.
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v (line %d): %s", e.Err, e.Line, e.Reason)
	}

	return fmt.Sprintf("%v: %s", e.Err, e.Reason)
}

// Unwrap exposes the failure kind to errors.Is.
func (e *LoadError) Unwrap() error { return e.Err }

func failf(line int, kind error, format string, args ...any) *LoadError {
	return &LoadError{Line: line, Reason: fmt.Sprintf(format, args...), Err: kind}
}
