// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_random_geometric.go — RandomGeometric(n, radius).
//
// Contract:
//   • n ≥ 1, radius ≥ 0, cfg.rng non-nil.
//   • Points are drawn uniformly from [0, extent]² with whole coordinates.
//   • Edge i—j (i < j) iff Euclidean distance ≤ radius.
//   • The result may be disconnected; that is useful for no-path fixtures.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minRandomNodes        = 1
)

// RandomGeometric returns a Constructor that builds a random geometric graph.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minRandomNodes, ErrTooFewVertices)
		}
		if radius < 0 || math.IsNaN(radius) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		pts := make([][2]int, n)
		for i := range pts {
			pts[i] = [2]int{cfg.rng.Intn(cfg.extent + 1), cfg.rng.Intn(cfg.extent + 1)}
		}
		base, err := addNodes(g, methodRandomGeometric, pts)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := float64(pts[i][0] - pts[j][0])
				dy := float64(pts[i][1] - pts[j][1])
				if math.Hypot(dx, dy) > radius {
					continue
				}
				if err = link(g, methodRandomGeometric, base+i+1, base+j+1); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
