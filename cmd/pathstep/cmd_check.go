package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/bfs"
	"github.com/katalvlaran/pathstep/loader"
)

func newCheckCmd(logLevel *string) *cobra.Command {
	var graph string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load a graph file and report its shape and warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := *logLevel
			if level == "" {
				level = "warn"
			}
			g, rep, err := loader.LoadFile(graph, loader.WithLogger(newLogger(cmd, level)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.Title.Render(graph))
			fmt.Fprintf(out, "nodes     %d\n", rep.Nodes)
			fmt.Fprintf(out, "edges     %d\n", rep.Edges)
			fmt.Fprintf(out, "mirrored  %d\n", rep.MirroredEdges)
			fmt.Fprintf(out, "warnings  %d\n", len(rep.Warnings))
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "components %d\n", len(comps))
			if minX, minY, maxX, maxY, ok := g.Bounds(); ok {
				fmt.Fprintf(out, "bounds    (%g, %g) – (%g, %g)\n", minX, minY, maxX, maxY)
			}
			for _, w := range rep.Warnings {
				fmt.Fprintln(out, styles.Warning.Render(fmt.Sprintf("  line %d: node %d: %s %d",
					w.Line, w.NodeID, w.Reason, w.NeighborID)))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&graph, "graph", "g", "", "graph description file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
