package search

import "fmt"

// ParentFunc reports the predecessor of id on the best known path.
// ok is false for the start node and for undiscovered nodes.
type ParentFunc func(id int) (parent int, ok bool)

// Reconstruct walks parent links from goal back to start and returns the
// path in start→goal order.
//
// A chain that revisits a node, or that ends anywhere but start, yields
// ErrBrokenPath. Either indicates an engine defect; correct relaxation can
// produce neither.
//
// Complexity: O(L) time and space, L = path length.
func Reconstruct(start, goal int, parentOf ParentFunc) ([]int, error) {
	seen := make(map[int]struct{})
	path := []int{}
	for cur := goal; ; {
		if _, dup := seen[cur]; dup {
			return nil, fmt.Errorf("%w: cycle at node %d", ErrBrokenPath, cur)
		}
		seen[cur] = struct{}{}
		path = append(path, cur)
		if cur == start {
			break
		}
		prev, ok := parentOf(cur)
		if !ok {
			return nil, fmt.Errorf("%w: node %d has no parent", ErrBrokenPath, cur)
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
