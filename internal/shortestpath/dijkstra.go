// Package shortestpath computes weighted single-source shortest paths with
// Dijkstra's algorithm and reconstructs paths from the resulting predecessor
// map.
//
// Minimum selection is a linear scan over the unvisited vertices, so one run
// costs O(V^2). That is fine for networks of a few thousand vertices; larger
// inputs would want a heap-based frontier.
package shortestpath

import (
	"fmt"
	"math"

	"github.com/vanshika/finnet/internal/network"
)

// Infinity is the distance of a vertex the source cannot reach.
const Infinity = math.MaxInt

// DistanceMap maps every vertex to its minimum distance from the source.
type DistanceMap map[string]int

// PredecessorMap maps every vertex to the vertex preceding it on a shortest
// path. The source and unreached vertices map to "".
type PredecessorMap map[string]string

// Graph is the read-only view Dijkstra needs. Edge weights must be positive.
type Graph interface {
	HasVertex(label string) bool
	Vertices() []string
	WeightedNeighbors(label string) ([]network.Neighbor, error)
}

// Result holds the output of one Dijkstra run.
type Result struct {
	Source       string
	Distances    DistanceMap
	Predecessors PredecessorMap

	order []string
}

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Ties between unvisited vertices with equal tentative distance go to the one
// that comes first in g.Vertices(). The loop stops as soon as the closest
// unvisited vertex is at Infinity; every remaining vertex keeps Infinity and
// an empty predecessor. A route whose total weight would reach Infinity is
// never relaxed, so such a vertex counts as unreachable.
func Dijkstra(g Graph, source string) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra source %q: %w", source, network.ErrUnknownVertex)
	}

	vertices := g.Vertices()
	dist := make(DistanceMap, len(vertices))
	prev := make(PredecessorMap, len(vertices))
	for _, v := range vertices {
		dist[v] = Infinity
		prev[v] = ""
	}
	dist[source] = 0

	unvisited := append([]string(nil), vertices...)
	for len(unvisited) > 0 {
		idx := 0
		for i, v := range unvisited {
			if dist[v] < dist[unvisited[idx]] {
				idx = i
			}
		}
		current := unvisited[idx]
		if dist[current] == Infinity {
			break
		}

		neighbors, err := g.WeightedNeighbors(current)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			// A sum at or past Infinity would wrap or read as unreachable.
			if n.Weight >= Infinity-dist[current] {
				continue
			}
			candidate := dist[current] + n.Weight
			if candidate < dist[n.Label] {
				dist[n.Label] = candidate
				prev[n.Label] = current
			}
		}

		unvisited = append(unvisited[:idx], unvisited[idx+1:]...)
	}

	return &Result{
		Source:       source,
		Distances:    dist,
		Predecessors: prev,
		order:        vertices,
	}, nil
}

// Reachable reports whether target has a finite distance from the source.
func (r *Result) Reachable(target string) bool {
	d, ok := r.Distances[target]
	return ok && d < Infinity
}

// Distance returns the distance to target and whether it is reachable.
func (r *Result) Distance(target string) (int, bool) {
	d, ok := r.Distances[target]
	if !ok || d == Infinity {
		return Infinity, false
	}
	return d, true
}

// PathTo reconstructs a shortest path from the source to target. It checks
// reachability first, so an unreachable target yields (nil, false, nil)
// rather than a misleading single-vertex path.
func (r *Result) PathTo(target string) (network.Path, bool, error) {
	if _, ok := r.Distances[target]; !ok {
		return nil, false, fmt.Errorf("path to %q: %w", target, network.ErrUnknownVertex)
	}
	if !r.Reachable(target) {
		return nil, false, nil
	}
	path := ReconstructPath(r.Predecessors, r.Source, target)
	if path == nil {
		return nil, false, fmt.Errorf("path to %q: predecessor chain does not reach %q", target, r.Source)
	}
	return path, true, nil
}

// Vertices returns the vertex order the result was computed with.
func (r *Result) Vertices() []string {
	return append([]string(nil), r.order...)
}
