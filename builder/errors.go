// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRadius indicates a negative connection radius.
var ErrInvalidRadius = errors.New("builder: radius must be non-negative")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core rejection.
var ErrConstructFailed = errors.New("builder: construction failed")
