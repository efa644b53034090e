package network

import (
	"fmt"
	"math/rand"
)

// WeightPolicy decides the weight of the edge between u and v.
type WeightPolicy interface {
	Weight(u, v string) int
}

// WeightFunc adapts an ordinary function to a WeightPolicy.
type WeightFunc func(u, v string) int

// Weight calls f(u, v).
func (f WeightFunc) Weight(u, v string) int { return f(u, v) }

// RandomWeights draws weights uniformly from [min, max] using rng. Edges are
// visited in insertion order by AssignWeights, so a seeded rng reproduces the
// same weights for the same graph.
func RandomWeights(rng *rand.Rand, min, max int) WeightFunc {
	if max < min {
		min, max = max, min
	}
	span := max - min + 1
	return func(string, string) int {
		return min + rng.Intn(span)
	}
}

// ConstantWeight assigns w to every edge.
func ConstantWeight(w int) WeightFunc {
	return func(string, string) int { return w }
}

// AssignWeights applies policy to every edge of g. Weights are computed and
// validated first; if any is invalid no edge is modified.
func AssignWeights(g *Graph, policy WeightPolicy) error {
	edges := g.Edges()
	weights := make([]int, len(edges))
	for i, edge := range edges {
		w := policy.Weight(edge.Source, edge.Target)
		if w <= 0 {
			return fmt.Errorf("assign weight %q-%q: %w: %d", edge.Source, edge.Target, ErrInvalidWeight, w)
		}
		weights[i] = w
	}
	for i, edge := range edges {
		if err := g.SetEdgeWeight(edge.Source, edge.Target, weights[i]); err != nil {
			return err
		}
	}
	return nil
}
