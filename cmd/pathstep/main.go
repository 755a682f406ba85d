// Command pathstep loads a planar graph and steps an A* or greedy
// best-first search over it, printing every observation.
//
//	pathstep run --graph maze.txt --start 1 --goal 40 --algorithm A* --step
//	pathstep check --graph maze.txt
//	pathstep generate --kind grid --rows 6 --cols 8 > grid.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
