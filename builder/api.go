// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// api.go - public entry point and constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from opts and applies all constructors in order. Constructor errors are
// wrapped with "BuildGraph: %w"; no partial cleanup is attempted.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes appends len(pts) nodes with ids base+1.. and returns base.
func addNodes(g *core.Graph, method string, pts [][2]int) (int, error) {
	base := g.Len()
	for i, p := range pts {
		id := base + i + 1
		if err := g.AddNode(id, float64(p[0]), float64(p[1])); err != nil {
			return 0, fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}

	return base, nil
}

// link adds the undirected edge a—b, wrapping any core error.
func link(g *core.Graph, method string, a, b int) error {
	if _, err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d): %w", method, a, b, err)
	}

	return nil
}
