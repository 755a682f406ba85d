// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • spacing = 1
//   • extent  = 100
//   • rng     = nil (pure unless seeded)

package builder

import "math/rand"

const (
	defaultSpacing = 1
	defaultExtent  = 100
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	spacing int
	extent  int
	rng     *rand.Rand
}

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithSpacing sets the distance between neighbouring points.
// Panics on d < 1 (option constructors validate eagerly).
func WithSpacing(d int) BuilderOption {
	if d < 1 {
		panic("builder: WithSpacing(d < 1)")
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithExtent sets the side of the square RandomGeometric samples from.
// Panics on w < 1.
func WithExtent(w int) BuilderOption {
	if w < 1 {
		panic("builder: WithExtent(w < 1)")
	}
	return func(c *builderConfig) { c.extent = w }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		extent:  defaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
