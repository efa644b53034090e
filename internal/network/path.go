package network

import (
	"fmt"
	"strings"
)

// PathSeparator joins labels when a path is rendered for display.
const PathSeparator = " -> "

// Path is an ordered sequence of vertex labels from a start to an end vertex.
type Path []string

// String renders the path as labels joined by PathSeparator.
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first label, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// End returns the last label, or "" for an empty path.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Weight sums the traversal cost of every edge on the path.
func (p Path) Weight(g *Graph) (int, error) {
	total := 0
	for i := 1; i < len(p); i++ {
		w, err := g.EdgeWeight(p[i-1], p[i])
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}

// Validate checks that p is a simple path in g: every label exists, no label
// repeats and consecutive labels are adjacent.
func (p Path) Validate(g *Graph) error {
	seen := make(map[string]struct{}, len(p))
	for i, label := range p {
		if !g.HasVertex(label) {
			return fmt.Errorf("path position %d: %w: %q", i, ErrUnknownVertex, label)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("path position %d: vertex %q repeats", i, label)
		}
		seen[label] = struct{}{}
		if i > 0 && !g.HasEdge(p[i-1], label) {
			return fmt.Errorf("path position %d: %w: %q-%q", i, ErrEdgeNotFound, p[i-1], label)
		}
	}
	return nil
}
