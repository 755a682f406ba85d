package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/search"
)

// ExampleEngine_Advance drives a search one observation at a time.
func ExampleEngine_Advance() {
	g := core.NewGraph()
	_ = g.AddNode(1, 0, 0)
	_ = g.AddNode(2, 3, 4)
	_, _ = g.AddEdge(1, 2)

	eng, err := search.New(g, 1, 2, search.AStar)
	if err != nil {
		fmt.Println(err)
		return
	}
	for !eng.State().Terminal() {
		obs, err := eng.Advance()
		if err != nil {
			fmt.Println(err)
			return
		}
		switch {
		case obs.Kind == search.PathFound:
			fmt.Printf("step %d: path %v cost %.1f\n", obs.Step, obs.Path, obs.Cost)
		case obs.HasCurrent:
			fmt.Printf("step %d: expand %d, closed %v\n", obs.Step, obs.Current, obs.Closed)
		default:
			fmt.Printf("step %d: open %v\n", obs.Step, obs.Open)
		}
	}
	// Output:
	// step 0: open [1]
	// step 1: expand 1, closed [1]
	// step 2: expand 2, closed [1 2]
	// step 3: path [1 2] cost 5.0
}

// ExampleEngine_Run runs a greedy search to completion.
func ExampleEngine_Run() {
	g := core.NewGraph()
	for id, xy := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		_ = g.AddNode(id+1, xy[0], xy[1])
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	eng, _ := search.New(g, 1, 3, search.GBFS, search.WithRunID("demo"))
	res, err := eng.Run(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Found, res.Path, res.Cost, res.Expanded)
	// Output:
	// true [1 2 3] 2 3
}
