package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/bfs"
	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/loader"
	"github.com/katalvlaran/pathstep/logging"
	"github.com/katalvlaran/pathstep/metrics"
	"github.com/katalvlaran/pathstep/search"
)

// ErrVerifyFailed reports an A* result that disagrees with the oracle.
var ErrVerifyFailed = errors.New("pathstep: result disagrees with dijkstra")

const verifyEps = 1e-9

type runOptions struct {
	configPath string
	graph      string
	algorithm  string
	start      int
	goal       int
	maxSteps   int
	step       bool
	verify     bool
	metrics    bool
}

func newRunCmd(logLevel *string) *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a search and print every observation",
		Long: `Run loads --graph and advances the search until it terminates,
printing one line per observation. Omitted --start/--goal default to the
first and last node id. With --step, Enter advances one observation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd, *logLevel)
			if err != nil {
				return err
			}

			return runSearch(cmd, cfg, o.step)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "YAML config file")
	f.StringVarP(&o.graph, "graph", "g", "", "graph description file")
	f.StringVarP(&o.algorithm, "algorithm", "a", "", `"A*" or "GBFS"`)
	f.IntVarP(&o.start, "start", "s", 0, "start node id (default first node)")
	f.IntVarP(&o.goal, "goal", "t", 0, "goal node id (default last node)")
	f.IntVar(&o.maxSteps, "max-steps", 0, "stop after this many observations (0 = no limit)")
	f.BoolVar(&o.step, "step", false, "wait for Enter between observations")
	f.BoolVar(&o.verify, "verify", false, "cross-check the result with Dijkstra")
	f.BoolVar(&o.metrics, "metrics", false, "print engine counters after the run")

	return cmd
}

// resolve merges config file, environment and explicitly set flags.
func (o *runOptions) resolve(cmd *cobra.Command, logLevel string) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("graph") {
		cfg.Graph = o.graph
	}
	if f.Changed("algorithm") {
		cfg.Algorithm = o.algorithm
	}
	if f.Changed("start") {
		cfg.Start = o.start
	}
	if f.Changed("goal") {
		cfg.Goal = o.goal
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps = o.maxSteps
	}
	if f.Changed("verify") {
		cfg.Verify = o.verify
	}
	if f.Changed("metrics") {
		cfg.Metrics = o.metrics
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, cfg.Validate()
}

func runSearch(cmd *cobra.Command, cfg config.Config, interactive bool) error {
	out := cmd.OutOrStdout()
	logger := newLogger(cmd, cfg.LogLevel)

	g, rep, err := loader.LoadFile(cfg.Graph, loader.WithLogger(logger))
	if err != nil {
		return err
	}
	start, goal := endpoints(g, cfg.Start, cfg.Goal)
	algo := cfg.SearchAlgorithm()

	opts := []search.Option{search.WithLogger(logger)}
	var collector *metrics.Collector
	if cfg.Metrics {
		collector = metrics.NewCollector("pathstep")
		opts = append(opts, search.WithHooks(collector.Hooks(algo)))
	}
	eng, err := search.New(g, start, goal, algo, opts...)
	if err != nil {
		return err
	}
	if hops, err := bfs.BFS(g, start); err == nil && !hops.Reached(goal) {
		logger.Warn("goal %d is not connected to start %d; the search will exhaust", goal, start)
	}

	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("%s on %s: %d nodes, %d edges",
		algo, cfg.Graph, rep.Nodes, rep.Edges)))
	for _, w := range rep.Warnings {
		fmt.Fprintln(out, styles.Warning.Render(fmt.Sprintf("line %d: node %d: %s %d dropped",
			w.Line, w.NodeID, w.Reason, w.NeighborID)))
	}

	var prompt *bufio.Reader
	if interactive {
		prompt = bufio.NewReader(cmd.InOrStdin())
	}

	res := search.Result{}
	var last search.Observation
	for obs, err := range eng.Observations() {
		if err != nil {
			return err
		}
		res.Steps++
		last = obs
		fmt.Fprintln(out, renderObservation(obs))

		if obs.Terminal() {
			break
		}
		if cfg.MaxSteps > 0 && res.Steps >= cfg.MaxSteps {
			fmt.Fprintln(out, styles.Warning.Render(fmt.Sprintf("stopped after %d observations (state %s)",
				res.Steps, eng.State())))
			return nil
		}
		if prompt != nil {
			fmt.Fprint(cmd.ErrOrStderr(), styles.Muted.Render("⏎ next"))
			switch _, err = prompt.ReadString('\n'); {
			case errors.Is(err, io.EOF):
				// input closed: finish without pausing
				prompt = nil
			case err != nil:
				return fmt.Errorf("read step prompt: %w", err)
			}
		}
	}
	res.Found = last.Kind == search.PathFound
	res.Path = last.Path
	res.Cost = last.Cost
	res.Expanded = eng.Expanded()

	s := summary{Algorithm: algo, Start: start, Goal: goal, Result: res, RunID: eng.RunID()}
	var verifyErr error
	if cfg.Verify {
		s.Verified, verifyErr = verify(g, start, goal, algo, res, logger)
	}
	fmt.Fprintln(out, renderSummary(s))

	if collector != nil {
		if err = writeMetrics(out, collector); err != nil {
			return err
		}
	}

	return verifyErr
}

// endpoints applies the first/last node defaults. An empty graph yields
// zeros, which search.New rejects.
func endpoints(g *core.Graph, start, goal int) (int, int) {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return start, goal
	}
	if start == 0 {
		start = ids[0]
	}
	if goal == 0 {
		goal = ids[len(ids)-1]
	}

	return start, goal
}

// verify compares res with Dijkstra. A* must match it exactly; GBFS may
// only be worse.
func verify(g *core.Graph, start, goal int, algo search.Algorithm, res search.Result, logger logging.Logger) (string, error) {
	cost, _, err := dijkstra.ShortestPath(g, start, goal)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		if res.Found {
			return "unreachable", fmt.Errorf("%w: search found a path the oracle did not", ErrVerifyFailed)
		}
		return "agrees: unreachable", nil
	case err != nil:
		return "", err
	case !res.Found:
		return fmt.Sprintf("optimal %.4f", cost), fmt.Errorf("%w: oracle reaches goal at %.4f", ErrVerifyFailed, cost)
	}

	if math.Abs(cost-res.Cost) <= verifyEps {
		return fmt.Sprintf("agrees: optimal %.4f", cost), nil
	}
	if algo == search.AStar {
		return fmt.Sprintf("optimal %.4f", cost),
			fmt.Errorf("%w: A* cost %.6f, optimal %.6f", ErrVerifyFailed, res.Cost, cost)
	}
	logger.Info("greedy path is %.2f%% above optimal", 100*(res.Cost-cost)/cost)

	return fmt.Sprintf("optimal %.4f (+%.4f)", cost, res.Cost-cost), nil
}

// writeMetrics prints every gathered sample as "name{labels} value".
func writeMetrics(w io.Writer, c *metrics.Collector) error {
	families, err := c.Registry().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				v = float64(m.GetHistogram().GetSampleCount())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), v))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, styles.Muted.Render(l))
	}

	return nil
}
