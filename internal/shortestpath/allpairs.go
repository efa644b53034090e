package shortestpath

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vanshika/finnet/internal/network"
)

// Route is the shortest connection from a source to one target.
type Route struct {
	Source    string       `json:"source"`
	Target    string       `json:"target"`
	Distance  int          `json:"distance"`
	Path      network.Path `json:"path"`
	Reachable bool         `json:"reachable"`
}

// MarshalJSON encodes an unreachable route with a null distance and path
// instead of leaking the Infinity sentinel.
func (r Route) MarshalJSON() ([]byte, error) {
	type plain Route
	if r.Reachable {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		Source    string       `json:"source"`
		Target    string       `json:"target"`
		Distance  *int         `json:"distance"`
		Path      network.Path `json:"path"`
		Reachable bool         `json:"reachable"`
	}{Source: r.Source, Target: r.Target})
}

// Routes lists a route from the result's source to every other vertex, in
// vertex order. Unreachable targets carry Distance == Infinity and no path.
func Routes(r *Result) ([]Route, error) {
	routes := make([]Route, 0, len(r.order))
	for _, target := range r.order {
		if target == r.Source {
			continue
		}
		path, reachable, err := r.PathTo(target)
		if err != nil {
			return nil, err
		}
		route := Route{
			Source:    r.Source,
			Target:    target,
			Distance:  Infinity,
			Path:      path,
			Reachable: reachable,
		}
		if reachable {
			route.Distance = r.Distances[target]
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// AllPairs runs Dijkstra from every vertex of g. Runs share nothing but the
// read-only graph, so up to workers of them execute at once; g must not be
// modified until AllPairs returns. Results are ordered like g.Vertices().
func AllPairs(ctx context.Context, g Graph, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = 1
	}
	sources := g.Vertices()
	results := make([]*Result, len(sources))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, source := range sources {
		if err := gctx.Err(); err != nil {
			break
		}
		i, source := i, source
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Dijkstra(g, source)
			if err != nil {
				return fmt.Errorf("shortest paths from %q: %w", source, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
