package pathfind

import "github.com/vanshika/finnet/internal/network"

// DFS returns the first simple path from start to end found by depth-first
// search in neighbor enumeration order. The path is not necessarily shortest.
//
// The only visited set is the path prefix of each branch. A vertex that was
// on a failed branch can therefore appear again on a later branch after
// backtracking. Neighbors are pushed in reverse so the first neighbor is
// explored first, which yields the same path as the recursive formulation.
// Depth is bounded by the number of vertices because no vertex repeats within
// one prefix.
func DFS(g Graph, start, end string) (network.Path, bool, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, false, err
	}

	stack := []network.Path{{start}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		current := path[len(path)-1]
		if current == end {
			return path, true, nil
		}

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return nil, false, err
		}
		for i := len(neighbors) - 1; i >= 0; i-- {
			next := neighbors[i]
			if onPath(path, next) {
				continue
			}
			stack = append(stack, extend(path, next))
		}
	}

	return nil, false, nil
}

func onPath(path network.Path, label string) bool {
	for _, v := range path {
		if v == label {
			return true
		}
	}
	return false
}
