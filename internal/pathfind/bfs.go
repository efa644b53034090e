package pathfind

import "github.com/vanshika/finnet/internal/network"

// BFS returns a path from start to end with the minimum number of edges.
//
// The frontier holds whole partial paths rather than vertices. A vertex is
// marked visited when it is enqueued, so each vertex is expanded at most once
// and the first path that reaches end is a shortest one. Among equally short
// paths the winner depends on neighbor enumeration order.
func BFS(g Graph, start, end string) (network.Path, bool, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, false, err
	}

	queue := []network.Path{{start}}
	visited := map[string]struct{}{start: {}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		current := path[len(path)-1]
		if current == end {
			return path, true, nil
		}

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return nil, false, err
		}
		for _, next := range neighbors {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, extend(path, next))
		}
	}

	return nil, false, nil
}
