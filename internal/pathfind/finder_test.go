package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gc "gopkg.in/check.v1"

	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/pathfind"
	"github.com/vanshika/finnet/internal/pathfind/pathtest"
)

var (
	_ = gc.Suite(new(BFSSuite))
	_ = gc.Suite(new(DFSSuite))
)

func Test(t *testing.T) { gc.TestingT(t) }

type BFSSuite struct {
	pathtest.SuiteBase
}

func (s *BFSSuite) SetUpSuite(c *gc.C) {
	s.SetFinder(pathfind.BFS)
}

type DFSSuite struct {
	pathtest.SuiteBase
}

func (s *DFSSuite) SetUpSuite(c *gc.C) {
	s.SetFinder(pathfind.DFS)
}

// hopDistances computes unit-weight all-pairs distances with Floyd-Warshall.
func hopDistances(g *network.Graph) map[string]map[string]int {
	const inf = 1 << 30
	dist := make(map[string]map[string]int, g.Order())
	for _, u := range g.Vertices() {
		dist[u] = make(map[string]int, g.Order())
		for _, v := range g.Vertices() {
			dist[u][v] = inf
		}
		dist[u][u] = 0
	}
	for _, e := range g.Edges() {
		dist[e.Source][e.Target] = 1
		dist[e.Target][e.Source] = 1
	}
	for _, k := range g.Vertices() {
		for _, i := range g.Vertices() {
			for _, j := range g.Vertices() {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

func TestBFSReturnsFewestHops(t *testing.T) {
	g, err := dataset.Builtin().Build()
	require.NoError(t, err)
	dist := hopDistances(g)

	for _, from := range g.Vertices() {
		for _, to := range g.Vertices() {
			path, found, err := pathfind.BFS(g, from, to)
			require.NoError(t, err)
			require.True(t, found)
			require.NoError(t, path.Validate(g))
			assert.Equal(t, dist[from][to], path.Hops(), "%s -> %s via %v", from, to, path)
		}
	}
}

func TestBFSSquareScenario(t *testing.T) {
	g := network.NewGraph()
	for _, label := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(label, network.NodeTypeCompany))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))
	require.NoError(t, g.AddEdge("A", "D"))

	path, found, err := pathfind.BFS(g, "A", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, path.Hops())
	assert.Contains(t, []network.Path{{"A", "B", "C"}, {"A", "D", "C"}}, path)

	path, found, err = pathfind.DFS(g, "A", "D")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, network.Path{"A", "B", "C", "D"}, path, "DFS follows the first neighbor even when a shorter path exists")
}

func TestReferenceNetworkPaths(t *testing.T) {
	g, err := dataset.Builtin().Build()
	require.NoError(t, err)

	bfs, found, err := pathfind.BFS(g, "Apple", "Facebook")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, network.Path{"Apple", "JP Morgan", "Bank of America", "Facebook"}, bfs)

	dfs, found, err := pathfind.DFS(g, "Apple", "Facebook")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, network.Path{"Apple", "JP Morgan", "Amazon", "Wells Fargo", "Facebook"}, dfs)
	assert.Equal(t, "Apple -> JP Morgan -> Amazon -> Wells Fargo -> Facebook", dfs.String())
}

func TestDFSDoesNotShareBranchState(t *testing.T) {
	// Hub has three spokes; only the last one leads to the target. Each
	// failed branch must leave the later branches untouched.
	g := network.NewGraph()
	for _, label := range []string{"Hub", "S1", "S2", "S3", "Leaf1", "Leaf2", "Target"} {
		require.NoError(t, g.AddVertex(label, network.NodeTypeBank))
	}
	for _, e := range [][2]string{
		{"Hub", "S1"}, {"Hub", "S2"}, {"Hub", "S3"},
		{"S1", "Leaf1"}, {"S2", "Leaf2"}, {"S1", "S2"},
		{"S3", "Target"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	path, found, err := pathfind.DFS(g, "Hub", "Target")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, network.Path{"Hub", "S3", "Target"}, path)
}

func TestParseAndLookup(t *testing.T) {
	algo, err := pathfind.ParseAlgorithm(" BFS ")
	require.NoError(t, err)
	assert.Equal(t, pathfind.AlgorithmBFS, algo)

	_, err = pathfind.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	for _, algo := range pathfind.Algorithms() {
		fn, err := pathfind.Lookup(algo)
		require.NoError(t, err)
		assert.NotNil(t, fn)
	}

	_, err = pathfind.Lookup("greedy")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}
