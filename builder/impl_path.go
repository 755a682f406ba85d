// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_path.go - Path(n): n nodes at (i*spacing, 0), edges i—i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		pts := make([][2]int, n)
		for i := range pts {
			pts[i] = [2]int{i * cfg.spacing, 0}
		}
		base, err := addNodes(g, methodPath, pts)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = link(g, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
