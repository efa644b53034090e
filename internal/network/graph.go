// Package network holds the in-memory model of a financial network: an
// undirected graph of companies and banks with optionally weighted edges.
//
// A Graph is built by a single writer and then frozen. After Freeze returns the
// topology can no longer change and the graph may be read from any number of
// goroutines. Edge weights may still be set on a frozen graph, but only before
// shortest-path queries start; changing them while a query runs is a data race.
package network

import (
	"fmt"
	"strings"
)

// NodeType classifies a vertex.
type NodeType string

const (
	NodeTypeCompany NodeType = "company"
	NodeTypeBank    NodeType = "bank"
)

// ParseNodeType converts user input into a NodeType.
func ParseNodeType(value string) (NodeType, error) {
	switch NodeType(strings.ToLower(strings.TrimSpace(value))) {
	case NodeTypeCompany:
		return NodeTypeCompany, nil
	case NodeTypeBank:
		return NodeTypeBank, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNodeType, value)
	}
}

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	return t == NodeTypeCompany || t == NodeTypeBank
}

// DefaultWeight is the weight of an edge that was never assigned one.
const DefaultWeight = 1

// Edge is an undirected connection between two vertices. Source and Target
// keep the order in which the edge was added.
type Edge struct {
	Source   string
	Target   string
	Weight   int
	Weighted bool
}

// Cost returns the weight used for traversal: the assigned weight, or
// DefaultWeight for an unweighted edge.
func (e Edge) Cost() int {
	if !e.Weighted {
		return DefaultWeight
	}
	return e.Weight
}

// Neighbor is an adjacent vertex together with the cost of reaching it.
type Neighbor struct {
	Label  string
	Weight int
}

type vertex struct {
	label    string
	nodeType NodeType
	adjacent []string
}

type edgeKey struct {
	a, b string
}

func keyFor(u, v string) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{a: u, b: v}
}

// Graph is an undirected simple graph with labeled vertices.
type Graph struct {
	vertices map[string]*vertex
	order    []string

	edges     map[edgeKey]*Edge
	edgeOrder []edgeKey

	frozen bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*vertex),
		edges:    make(map[edgeKey]*Edge),
	}
}

// AddVertex inserts a vertex with the given label and node type.
func (g *Graph) AddVertex(label string, nodeType NodeType) error {
	if g.frozen {
		return fmt.Errorf("add vertex %q: %w", label, ErrFrozen)
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if !nodeType.Valid() {
		return fmt.Errorf("add vertex %q: %w: %q", label, ErrInvalidNodeType, nodeType)
	}
	if _, exists := g.vertices[label]; exists {
		return fmt.Errorf("add vertex %q: %w", label, ErrDuplicateVertex)
	}

	g.vertices[label] = &vertex{label: label, nodeType: nodeType}
	g.order = append(g.order, label)
	return nil
}

// AddEdge connects u and v with an unweighted edge.
func (g *Graph) AddEdge(u, v string) error {
	return g.addEdge(u, v, 0, false)
}

// AddWeightedEdge connects u and v with an edge of weight w.
func (g *Graph) AddWeightedEdge(u, v string, w int) error {
	return g.addEdge(u, v, w, true)
}

func (g *Graph) addEdge(u, v string, w int, weighted bool) error {
	if g.frozen {
		return fmt.Errorf("add edge %q-%q: %w", u, v, ErrFrozen)
	}
	src, ok := g.vertices[u]
	if !ok {
		return fmt.Errorf("add edge %q-%q: %w: %q", u, v, ErrUnknownVertex, u)
	}
	dst, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("add edge %q-%q: %w: %q", u, v, ErrUnknownVertex, v)
	}
	if u == v {
		return fmt.Errorf("add edge %q-%q: %w", u, v, ErrSelfLoop)
	}
	if weighted && w <= 0 {
		return fmt.Errorf("add edge %q-%q: %w: %d", u, v, ErrInvalidWeight, w)
	}
	key := keyFor(u, v)
	if _, exists := g.edges[key]; exists {
		return fmt.Errorf("add edge %q-%q: %w", u, v, ErrDuplicateEdge)
	}

	g.edges[key] = &Edge{Source: u, Target: v, Weight: w, Weighted: weighted}
	g.edgeOrder = append(g.edgeOrder, key)
	src.adjacent = append(src.adjacent, v)
	dst.adjacent = append(dst.adjacent, u)
	return nil
}

// SetEdgeWeight assigns weight w to the existing edge between u and v.
func (g *Graph) SetEdgeWeight(u, v string, w int) error {
	edge, ok := g.edges[keyFor(u, v)]
	if !ok {
		return fmt.Errorf("set weight %q-%q: %w", u, v, ErrEdgeNotFound)
	}
	if w <= 0 {
		return fmt.Errorf("set weight %q-%q: %w: %d", u, v, ErrInvalidWeight, w)
	}
	edge.Weight = w
	edge.Weighted = true
	return nil
}

// EdgeWeight returns the traversal cost of the edge between u and v.
func (g *Graph) EdgeWeight(u, v string) (int, error) {
	edge, ok := g.edges[keyFor(u, v)]
	if !ok {
		return 0, fmt.Errorf("edge %q-%q: %w", u, v, ErrEdgeNotFound)
	}
	return edge.Cost(), nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.edges[keyFor(u, v)]
	return ok
}

// Neighbors returns the vertices adjacent to v in the order the edges were
// added. The returned slice is a copy.
func (g *Graph) Neighbors(v string) ([]string, error) {
	vert, ok := g.vertices[v]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", v, ErrUnknownVertex)
	}
	return append([]string(nil), vert.adjacent...), nil
}

// WeightedNeighbors returns the vertices adjacent to v with edge costs.
func (g *Graph) WeightedNeighbors(v string) ([]Neighbor, error) {
	vert, ok := g.vertices[v]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", v, ErrUnknownVertex)
	}
	out := make([]Neighbor, 0, len(vert.adjacent))
	for _, label := range vert.adjacent {
		out = append(out, Neighbor{Label: label, Weight: g.edges[keyFor(v, label)].Cost()})
	}
	return out, nil
}

// HasVertex reports whether label is part of the graph.
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.vertices[label]
	return ok
}

// NodeType returns the node type of label.
func (g *Graph) NodeType(label string) (NodeType, error) {
	vert, ok := g.vertices[label]
	if !ok {
		return "", fmt.Errorf("node type of %q: %w", label, ErrUnknownVertex)
	}
	return vert.nodeType, nil
}

// Degree returns the number of edges incident to label.
func (g *Graph) Degree(label string) (int, error) {
	vert, ok := g.vertices[label]
	if !ok {
		return 0, fmt.Errorf("degree of %q: %w", label, ErrUnknownVertex)
	}
	return len(vert.adjacent), nil
}

// Vertices returns all labels in insertion order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// Edges returns a copy of every edge in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		out = append(out, *g.edges[key])
	}
	return out
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.order) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edgeOrder) }

// Weighted reports whether at least one edge carries an assigned weight.
func (g *Graph) Weighted() bool {
	for _, edge := range g.edges {
		if edge.Weighted {
			return true
		}
	}
	return false
}

// Freeze fixes the topology. Later AddVertex and AddEdge calls fail with
// ErrFrozen.
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }
