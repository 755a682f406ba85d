// Package metrics counts search engine activity with Prometheus.
//
// A Collector owns its registry, so several collectors (one per test, say)
// never collide on metric names. Attach one to an engine through the hooks
// it returns:
//
//	c := metrics.NewCollector("pathstep")
//	eng, _ := search.New(g, s, t, search.AStar, search.WithHooks(c.Hooks(search.AStar)))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathstep/search"
)

// Collector bundles the engine counters. Safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	// expansions counts closed nodes. Labels: algorithm
	expansions *prometheus.CounterVec

	// relaxations counts recorded improvements. Labels: algorithm
	relaxations *prometheus.CounterVec

	// stalePops counts discarded frontier entries. Labels: algorithm
	stalePops *prometheus.CounterVec

	// searches counts finished searches. Labels: algorithm, outcome
	searches *prometheus.CounterVec

	// steps observes the observation count of finished searches.
	// Labels: algorithm
	steps *prometheus.HistogramVec
}

// NewCollector registers the engine metrics under namespace on a fresh
// registry.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		expansions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expansions_total",
			Help:      "Nodes closed by the search engine",
		}, []string{"algorithm"}),
		relaxations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "relaxations_total",
			Help:      "Cheaper paths recorded during relaxation",
		}, []string{"algorithm"}),
		stalePops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "stale_pops_total",
			Help:      "Superseded frontier entries discarded on extraction",
		}, []string{"algorithm"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "finished_total",
			Help:      "Searches reaching a terminal state, by outcome",
		}, []string{"algorithm", "outcome"}),
		steps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "steps",
			Help:      "Observations emitted per finished search",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 12),
		}, []string{"algorithm"}),
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Hooks returns engine callbacks that record into c under algo's label.
func (c *Collector) Hooks(algo search.Algorithm) search.Hooks {
	label := algo.String()
	expansions := c.expansions.WithLabelValues(label)
	relaxations := c.relaxations.WithLabelValues(label)
	stale := c.stalePops.WithLabelValues(label)
	steps := c.steps.WithLabelValues(label)

	return search.Hooks{
		OnExpand: func(int, float64) { expansions.Inc() },
		OnRelax:  func(int, int, float64) { relaxations.Inc() },
		OnStale:  func(int) { stale.Inc() },
		OnTerminal: func(kind search.TerminalKind, step int) {
			c.searches.WithLabelValues(label, kind.String()).Inc()
			// steps are 0-based, so the count is step+1
			steps.Observe(float64(step + 1))
		},
	}
}
