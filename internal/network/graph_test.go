package network

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquare(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	for _, label := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(label, NodeTypeCompany))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))
	require.NoError(t, g.AddEdge("A", "D"))
	return g
}

func TestAddVertex(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("Apple", NodeTypeCompany))
	require.NoError(t, g.AddVertex("Citigroup", NodeTypeBank))

	err := g.AddVertex("Apple", NodeTypeBank)
	assert.ErrorIs(t, err, ErrDuplicateVertex)

	nt, err := g.NodeType("Apple")
	require.NoError(t, err)
	assert.Equal(t, NodeTypeCompany, nt, "node type must not change on a failed re-add")

	assert.ErrorIs(t, g.AddVertex("", NodeTypeBank), ErrEmptyLabel)
	assert.ErrorIs(t, g.AddVertex("Fund", NodeType("hedge")), ErrInvalidNodeType)
	assert.Equal(t, []string{"Apple", "Citigroup"}, g.Vertices())
}

func TestAddEdge(t *testing.T) {
	g := buildSquare(t)

	tests := []struct {
		name string
		u, v string
		want error
	}{
		{"unknown source", "Z", "A", ErrUnknownVertex},
		{"unknown target", "A", "Z", ErrUnknownVertex},
		{"self loop", "A", "A", ErrSelfLoop},
		{"duplicate", "B", "A", ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Equal(t, 4, g.Size(), "failed inserts must not add edges")
	assert.ErrorIs(t, g.AddWeightedEdge("A", "C", 0), ErrInvalidWeight)
	assert.False(t, g.HasEdge("A", "C"))
}

func TestNeighborsAreSymmetric(t *testing.T) {
	g := buildSquare(t)

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, nbrs)

	nbrs, err = g.Neighbors("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, nbrs)

	_, err = g.Neighbors("Q")
	assert.ErrorIs(t, err, ErrUnknownVertex)

	degree, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, degree)
}

func TestNeighborsReturnsCopy(t *testing.T) {
	g := buildSquare(t)
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	nbrs[0] = "mutated"

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, "B", again[0])
}

func TestSetEdgeWeight(t *testing.T) {
	g := buildSquare(t)
	assert.False(t, g.Weighted())

	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, DefaultWeight, w)

	require.NoError(t, g.SetEdgeWeight("B", "A", 7))
	w, err = g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 7, w)
	assert.True(t, g.Weighted())

	assert.ErrorIs(t, g.SetEdgeWeight("A", "C", 3), ErrEdgeNotFound)
	assert.ErrorIs(t, g.SetEdgeWeight("A", "B", -2), ErrInvalidWeight)

	w, err = g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 7, w, "invalid weight must not overwrite the existing one")

	nbrs, err := g.WeightedNeighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []Neighbor{{Label: "B", Weight: 7}, {Label: "D", Weight: 1}}, nbrs)
}

func TestFreeze(t *testing.T) {
	g := buildSquare(t)
	g.Freeze()
	assert.True(t, g.Frozen())

	assert.ErrorIs(t, g.AddVertex("E", NodeTypeBank), ErrFrozen)
	assert.ErrorIs(t, g.AddEdge("A", "C"), ErrFrozen)
	assert.NoError(t, g.SetEdgeWeight("A", "B", 2), "weights can still be assigned after freezing")
}

func TestParseNodeType(t *testing.T) {
	nt, err := ParseNodeType(" Bank ")
	require.NoError(t, err)
	assert.Equal(t, NodeTypeBank, nt)

	_, err = ParseNodeType("broker")
	assert.True(t, errors.Is(err, ErrInvalidNodeType))
}

func TestPath(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.SetEdgeWeight("A", "B", 4))

	p := Path{"A", "B", "C"}
	assert.Equal(t, "A -> B -> C", p.String())
	assert.Equal(t, 2, p.Hops())
	assert.Equal(t, "A", p.Start())
	assert.Equal(t, "C", p.End())
	require.NoError(t, p.Validate(g))

	weight, err := p.Weight(g)
	require.NoError(t, err)
	assert.Equal(t, 5, weight)

	assert.Error(t, Path{"A", "C"}.Validate(g))
	assert.Error(t, Path{"A", "B", "A"}.Validate(g))
	assert.ErrorIs(t, Path{"A", "X"}.Validate(g), ErrUnknownVertex)

	var empty Path
	assert.Equal(t, 0, empty.Hops())
	assert.Equal(t, "", empty.String())
}

func TestAssignWeights(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, AssignWeights(g, RandomWeights(rand.New(rand.NewSource(42)), 1, 10)))

	first := make([]int, 0, g.Size())
	for _, edge := range g.Edges() {
		require.True(t, edge.Weighted)
		require.GreaterOrEqual(t, edge.Weight, 1)
		require.LessOrEqual(t, edge.Weight, 10)
		first = append(first, edge.Weight)
	}

	again := buildSquare(t)
	require.NoError(t, AssignWeights(again, RandomWeights(rand.New(rand.NewSource(42)), 1, 10)))
	for i, edge := range again.Edges() {
		assert.Equal(t, first[i], edge.Weight, "same seed must reproduce the same weights")
	}
}

func TestAssignWeightsRejectsInvalidPolicy(t *testing.T) {
	g := buildSquare(t)
	calls := 0
	policy := WeightFunc(func(u, v string) int {
		calls++
		if calls == 3 {
			return 0
		}
		return 5
	})

	err := AssignWeights(g, policy)
	require.ErrorIs(t, err, ErrInvalidWeight)
	assert.False(t, g.Weighted(), "no edge may be weighted after a rejected policy")

	require.NoError(t, AssignWeights(g, ConstantWeight(3)))
	w, err := g.EdgeWeight("C", "D")
	require.NoError(t, err)
	assert.Equal(t, 3, w)
}
