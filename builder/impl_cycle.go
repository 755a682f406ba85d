// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_cycle.go — Cycle(n) and Complete(n), both laid out on a circle.
//
// Layout:
//   • Node i sits at angle 2πi/n on a circle of radius n*spacing, rounded to
//     whole coordinates. Neighbouring points are ≈2π*spacing apart, so
//     rounding never collapses two points.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodCycle      = "Cycle"
	methodComplete   = "Complete"
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// circle returns n whole-number points evenly spread on a circle.
func circle(n, spacing int) [][2]int {
	r := float64(n * spacing)
	pts := make([][2]int, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]int{int(math.Round(r * math.Cos(theta))), int(math.Round(r * math.Sin(theta)))}
	}

	return pts
}

// Cycle returns a Constructor that builds an n-node ring C_n.
// Edges are emitted i—(i+1)%n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := addNodes(g, methodCycle, circle(n, cfg.spacing))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, methodCycle, base+i+1, base+(i+1)%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n.
// Edges are emitted in lexicographic (i, j), i < j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := addNodes(g, methodComplete, circle(n, cfg.spacing))
		if err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if err = link(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
