package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/logging"
)

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "pathstep",
		Short: "Step-by-step A* and greedy best-first search over planar graphs",
		Long: `pathstep loads a graph description (node coordinates plus adjacency)
and advances a search one observation at a time, showing the open and
closed sets, the node being expanded and, finally, the path found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error, disable (overrides config)")

	root.AddCommand(
		newRunCmd(&logLevel),
		newCheckCmd(&logLevel),
		newGenerateCmd(),
	)

	return root
}

// newLogger writes to cmd's stderr at the named level.
func newLogger(cmd *cobra.Command, level string) logging.Logger {
	l, err := logging.ParseLevel(level)
	if err != nil {
		l = logging.LevelInfo
	}

	return logging.New(cmd.ErrOrStderr(), l)
}
