// Package analysis computes structural statistics of a financial network:
// vertex degrees and betweenness centrality.
package analysis

import (
	"fmt"
	"sort"

	"github.com/vanshika/finnet/internal/network"
)

// DefaultTopN is how many central vertices a summary lists when the caller
// does not ask for a specific number.
const DefaultTopN = 5

// Graph is the read-only view the analysis needs.
type Graph interface {
	Vertices() []string
	Neighbors(label string) ([]string, error)
	NodeType(label string) (network.NodeType, error)
	Order() int
	Size() int
}

// Centrality is the betweenness score of one vertex.
type Centrality struct {
	Label    string           `json:"label"`
	NodeType network.NodeType `json:"nodeType"`
	Score    float64          `json:"score"`
}

// Summary describes the shape of a network.
type Summary struct {
	Vertices    int            `json:"vertices"`
	Edges       int            `json:"edges"`
	Companies   int            `json:"companies"`
	Banks       int            `json:"banks"`
	Degrees     map[string]int `json:"degrees"`
	MostCentral []Centrality   `json:"mostCentral"`
}

// Degrees returns the degree of every vertex.
func Degrees(g Graph) (map[string]int, error) {
	out := make(map[string]int, g.Order())
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		out[v] = len(nbrs)
	}
	return out, nil
}

// Betweenness computes normalized betweenness centrality with Brandes'
// algorithm on the unweighted topology. Scores are scaled by
// 1/((n-1)(n-2)) so they fall in [0, 1]; graphs with fewer than three
// vertices score zero everywhere.
func Betweenness(g Graph) (map[string]float64, error) {
	vertices := g.Vertices()
	adjacency := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		adjacency[v] = nbrs
	}

	cb := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		cb[v] = 0
	}

	for _, s := range vertices {
		var stack []string
		preds := make(map[string][]string, len(vertices))
		sigma := map[string]float64{s: 1}
		dist := map[string]int{s: 0}

		queue := []string{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range adjacency[v] {
				if _, seen := dist[w]; !seen {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Each unordered pair was counted from both endpoints, which the (n-1)(n-2)
	// denominator accounts for.
	n := len(vertices)
	if n <= 2 {
		for v := range cb {
			cb[v] = 0
		}
		return cb, nil
	}
	scale := 1 / float64((n-1)*(n-2))
	for v := range cb {
		cb[v] *= scale
	}
	return cb, nil
}

// TopCentral returns the n vertices with the highest betweenness, highest
// first. Ties are broken by label so the ranking is stable.
func TopCentral(g Graph, n int) ([]Centrality, error) {
	scores, err := Betweenness(g)
	if err != nil {
		return nil, err
	}
	ranked := make([]Centrality, 0, len(scores))
	for _, v := range g.Vertices() {
		nodeType, err := g.NodeType(v)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, Centrality{Label: v, NodeType: nodeType, Score: scores[v]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Label < ranked[j].Label
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Summarize collects counts, degrees and the topN most central vertices.
func Summarize(g Graph, topN int) (Summary, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	summary := Summary{Vertices: g.Order(), Edges: g.Size()}
	for _, v := range g.Vertices() {
		nodeType, err := g.NodeType(v)
		if err != nil {
			return Summary{}, err
		}
		switch nodeType {
		case network.NodeTypeCompany:
			summary.Companies++
		case network.NodeTypeBank:
			summary.Banks++
		}
	}

	degrees, err := Degrees(g)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize degrees: %w", err)
	}
	summary.Degrees = degrees

	central, err := TopCentral(g, topN)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize centrality: %w", err)
	}
	summary.MostCentral = central
	return summary, nil
}
