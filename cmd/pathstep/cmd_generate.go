package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/gridgraph"
	"github.com/katalvlaran/pathstep/loader"
)

// ErrUnknownKind reports an unsupported --kind.
var ErrUnknownKind = errors.New("pathstep: unknown graph kind")

type generateOptions struct {
	kind     string
	n        int
	rows     int
	cols     int
	radius   float64
	seed     int64
	spacing  int
	extent   int
	maze     string
	diagonal bool
	out      string
}

func newGenerateCmd() *cobra.Command {
	var o generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a fixture graph in the loader format",
		Long: `Generate builds a deterministic graph and writes it to --out (or stdout).
Kinds: path, cycle, complete (use --n), grid (--rows, --cols),
random (--n, --radius, --seed, --extent), maze (--maze, --diagonal).
A maze file uses '#' for walls, '.' for open cells and 'S'/'G' to mark
the start and goal, whose node ids are reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.spacing < 1 || o.extent < 1 {
				return fmt.Errorf("%w: spacing and extent must be ≥ 1", builder.ErrConstructFailed)
			}
			g, err := o.build(cmd)
			if err != nil {
				return err
			}

			if o.out == "" {
				return loader.Write(cmd.OutOrStdout(), g)
			}
			f, err := os.Create(o.out)
			if err != nil {
				return err
			}
			if err = loader.Write(f, g); err != nil {
				_ = f.Close()
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d nodes, %d edges\n", o.out, g.Len(), g.EdgeCount())

			return f.Close()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.kind, "kind", "k", "grid", "path, cycle, complete, grid, random or maze")
	f.IntVarP(&o.n, "n", "n", 10, "node count for path, cycle, complete and random")
	f.IntVar(&o.rows, "rows", 5, "grid rows")
	f.IntVar(&o.cols, "cols", 5, "grid columns")
	f.Float64Var(&o.radius, "radius", 20, "connection radius for random")
	f.Int64Var(&o.seed, "seed", 1, "random seed")
	f.IntVar(&o.spacing, "spacing", 10, "distance between neighbouring points")
	f.IntVar(&o.extent, "extent", 100, "side of the square random points are drawn from")
	f.StringVar(&o.maze, "maze", "", "maze text file for --kind maze")
	f.BoolVar(&o.diagonal, "diagonal", false, "connect maze cells diagonally too")
	f.StringVarP(&o.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func (o generateOptions) build(cmd *cobra.Command) (*core.Graph, error) {
	if o.kind == "maze" {
		return o.buildMaze(cmd)
	}
	con, err := o.constructor()
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph([]builder.BuilderOption{
		builder.WithSpacing(o.spacing),
		builder.WithExtent(o.extent),
		builder.WithSeed(o.seed),
	}, con)
}

func (o generateOptions) buildMaze(cmd *cobra.Command) (*core.Graph, error) {
	if o.maze == "" {
		return nil, fmt.Errorf("%w: --kind maze needs --maze", ErrUnknownKind)
	}
	f, err := os.Open(o.maze)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := gridgraph.ParseMaze(f)
	if err != nil {
		return nil, err
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Spacing = o.spacing
	if o.diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(m.Cells, opts)
	if err != nil {
		return nil, err
	}
	for _, mark := range []struct {
		name string
		cell gridgraph.Cell
		ok   bool
	}{{"start", m.Start, m.HasStart}, {"goal", m.Goal, m.HasGoal}} {
		if id, ok := gg.NodeAt(mark.cell.X, mark.cell.Y); mark.ok && ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s node %d\n", mark.name, id)
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "regions %d\n", len(gg.ConnectedComponents()))
	if m.HasStart && m.HasGoal && !gg.SameRegion(m.Start, m.Goal) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: S and G are in different regions")
	}

	return gg.ToCoreGraph()
}

func (o generateOptions) constructor() (builder.Constructor, error) {
	switch o.kind {
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "random":
		return builder.RandomGeometric(o.n, o.radius), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, o.kind)
	}
}
