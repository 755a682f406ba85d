// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets id base + r*cols + c + 1 and coordinate
//     (c*spacing, r*spacing).
//   • For each cell, emits Right then Bottom edges where they exist.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		pts := make([][2]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, [2]int{c * cfg.spacing, r * cfg.spacing})
			}
		}
		base, err := addNodes(g, methodGrid, pts)
		if err != nil {
			return err
		}

		id := func(r, c int) int { return base + r*cols + c + 1 }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(g, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
