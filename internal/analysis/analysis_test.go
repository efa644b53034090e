package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/network"
)

func buildGraph(t *testing.T, vertices []string, edges [][2]string) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v, network.NodeTypeBank))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestBetweennessPathGraph(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})

	scores, err := Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["B"], 1e-9)
	assert.InDelta(t, 0.0, scores["A"], 1e-9)
	assert.InDelta(t, 0.0, scores["C"], 1e-9)
}

func TestBetweennessStar(t *testing.T) {
	g := buildGraph(t, []string{"Hub", "L1", "L2", "L3"}, [][2]string{{"Hub", "L1"}, {"Hub", "L2"}, {"Hub", "L3"}})

	scores, err := Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["Hub"], 1e-9)
	for _, leaf := range []string{"L1", "L2", "L3"} {
		assert.Zero(t, scores[leaf])
	}
}

func TestBetweennessSplitsEqualPaths(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}})

	scores, err := Betweenness(g)
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.InDelta(t, 1.0/6.0, scores[v], 1e-9, v)
	}

	top, err := TopCentral(g, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Label)
	assert.Equal(t, "B", top[1].Label)
}

func TestBetweennessTinyGraphs(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	scores, err := Betweenness(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 0}, scores)

	scores, err = Betweenness(network.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestDegreesOfReferenceNetwork(t *testing.T) {
	g, err := dataset.Builtin().Build()
	require.NoError(t, err)

	degrees, err := Degrees(g)
	require.NoError(t, err)
	assert.Equal(t, 4, degrees["JP Morgan"])
	assert.Equal(t, 3, degrees["Citigroup"])
	assert.Equal(t, 2, degrees["Apple"])

	total := 0
	for _, d := range degrees {
		total += d
	}
	assert.Equal(t, 2*g.Size(), total)
}

func TestSummarize(t *testing.T) {
	g, err := dataset.Builtin().Build()
	require.NoError(t, err)

	summary, err := Summarize(g, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Vertices)
	assert.Equal(t, 13, summary.Edges)
	assert.Equal(t, 5, summary.Companies)
	assert.Equal(t, 5, summary.Banks)
	assert.Len(t, summary.Degrees, 10)
	require.Len(t, summary.MostCentral, DefaultTopN)

	for i, c := range summary.MostCentral {
		assert.GreaterOrEqual(t, c.Score, 0.0)
		assert.LessOrEqual(t, c.Score, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, summary.MostCentral[i-1].Score, c.Score)
		}
	}
	assert.Equal(t, "JP Morgan", summary.MostCentral[0].Label)
	assert.Equal(t, network.NodeTypeBank, summary.MostCentral[0].NodeType)
	assert.InDelta(t, 0.2917, summary.MostCentral[0].Score, 1e-4)

	var labels []string
	for _, c := range summary.MostCentral {
		labels = append(labels, c.Label)
	}
	assert.ElementsMatch(t, []string{"JP Morgan", "Bank of America", "Goldman Sachs", "Citigroup", "Wells Fargo"}, labels)
}
