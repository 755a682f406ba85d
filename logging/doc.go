// Package logging provides the small leveled logging interface used by the
// loader, the search engine and the pathstep CLI.
//
// Library packages accept a Logger through a WithLogger option and default
// to NoOp, so importing them never produces output on its own. The CLI wires
// a GologLogger backed by github.com/kataras/golog.
//
// # Log Levels
//
//   - LevelDebug: engine state transitions, per-step details
//   - LevelInfo:  search start and outcome
//   - LevelWarn:  recoverable load problems (dangling neighbour ids)
//   - LevelError: failures surfaced to the caller
//   - LevelNone:  disables all output
//
// # Example
//
//	logger := logging.New(os.Stderr, logging.LevelDebug)
//	g, report, err := loader.LoadFile("graph.txt", loader.WithLogger(logger))
package logging
