package loader

import "github.com/katalvlaran/pathstep/logging"

// Warning describes a neighbour reference that was dropped.
type Warning struct {
	Line       int // 1-based physical line of the adjacency record
	NodeID     int
	NeighborID int
	Reason     string
}

// Report summarises a successful load.
type Report struct {
	Nodes         int
	Edges         int
	MirroredEdges int // edges listed by one endpoint only
	Warnings      []Warning
}

// Options configures Load.
type Options struct {
	Logger    logging.Logger
	OnWarning func(Warning)
}

// Option represents a functional option for Load.
type Option func(*Options)

// WithLogger routes warnings (WARN) and a load summary (DEBUG) to l.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnWarning installs a callback fired for each dropped reference.
func WithOnWarning(fn func(Warning)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWarning = fn
		}
	}
}

// DefaultOptions returns a silent configuration.
func DefaultOptions() Options {
	return Options{
		Logger:    logging.NoOp{},
		OnWarning: func(Warning) {},
	}
}
