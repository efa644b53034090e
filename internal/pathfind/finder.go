// Package pathfind finds vertex-to-vertex paths in an unweighted view of a
// network. BFS returns a path with the fewest edges; DFS returns the first path
// found in depth-first order.
//
// Both finders report "no path" as (nil, false, nil). An error is returned only
// when start or end is not a vertex of the graph.
package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanshika/finnet/internal/network"
)

// Graph is the read-only view the finders need.
type Graph interface {
	HasVertex(label string) bool
	Neighbors(label string) ([]string, error)
}

// Algorithm names a path finding strategy.
type Algorithm string

const (
	AlgorithmBFS Algorithm = "bfs"
	AlgorithmDFS Algorithm = "dfs"
)

// ErrUnknownAlgorithm is returned by Lookup for unsupported names.
var ErrUnknownAlgorithm = errors.New("unknown path algorithm")

// FindFunc is the signature shared by BFS and DFS.
type FindFunc func(g Graph, start, end string) (network.Path, bool, error)

// Algorithms lists the supported strategies in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDFS}
}

// ParseAlgorithm normalises user input into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	switch algo {
	case AlgorithmBFS, AlgorithmDFS:
		return algo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Lookup returns the FindFunc implementing algo.
func Lookup(algo Algorithm) (FindFunc, error) {
	switch algo {
	case AlgorithmBFS:
		return BFS, nil
	case AlgorithmDFS:
		return DFS, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

func checkEndpoints(g Graph, start, end string) error {
	if !g.HasVertex(start) {
		return fmt.Errorf("start %q: %w", start, network.ErrUnknownVertex)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("end %q: %w", end, network.ErrUnknownVertex)
	}
	return nil
}

// extend returns a new path holding prefix followed by label. The prefix is
// never aliased, so sibling branches cannot observe each other's appends.
func extend(prefix network.Path, label string) network.Path {
	out := make(network.Path, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = label
	return out
}
