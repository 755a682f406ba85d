// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// Package builder generates deterministic coordinate graphs for tests,
// examples and the `pathstep generate` command.
//
// Every constructor appends nodes with consecutive ids continuing from the
// graph's current size (1, 2, 3, ... on a fresh graph), so any generated
// graph can be written with loader.Write and read back unchanged.
// Coordinates are whole numbers for the same reason.
//
// Topologies:
//
//	Path(n)                 n nodes on a horizontal line
//	Cycle(n)                n nodes on a circle, ring edges
//	Grid(rows, cols)        4-neighbourhood lattice, row-major ids
//	Complete(n)             K_n on a circle
//	RandomGeometric(n, r)   n random points, edge iff distance ≤ r (needs WithSeed)
//
// Options:
//
//	WithSpacing(d)  distance unit between neighbouring points (default 1)
//	WithExtent(w)   side of the square for RandomGeometric (default 100)
//	WithSeed(s)     deterministic RNG for stochastic constructors
//	WithRand(r)     explicit RNG
//
// Determinism: same constructors, same order, same options and seed ⇒
// identical graphs.
package builder
