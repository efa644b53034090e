// Package pathtest provides a reusable gocheck suite that any
// pathfind.FindFunc must pass.
package pathtest

import (
	"errors"

	gc "gopkg.in/check.v1"

	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/pathfind"
)

// SuiteBase defines path-finder conformance tests. Embed it in a suite and
// call SetFinder from SetUpSuite or SetUpTest.
type SuiteBase struct {
	find pathfind.FindFunc
}

// SetFinder selects the implementation under test.
func (s *SuiteBase) SetFinder(fn pathfind.FindFunc) {
	s.find = fn
}

// TestSquare exercises the four-cycle A-B-C-D-A.
func (s *SuiteBase) TestSquare(c *gc.C) {
	g := Square(c)

	path, found, err := s.find(g, "A", "B")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Assert(path, gc.DeepEquals, network.Path{"A", "B"})

	path, found, err = s.find(g, "A", "C")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Assert(path.Validate(g), gc.IsNil)
	c.Assert(path.Start(), gc.Equals, "A")
	c.Assert(path.End(), gc.Equals, "C")
}

// TestSelfPair verifies that a vertex reaches itself with a zero-length path.
func (s *SuiteBase) TestSelfPair(c *gc.C) {
	g := Square(c)

	path, found, err := s.find(g, "A", "A")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Assert(path, gc.DeepEquals, network.Path{"A"})
	c.Assert(path.Hops(), gc.Equals, 0)
}

// TestDisconnected verifies that unreachable targets are not errors.
func (s *SuiteBase) TestDisconnected(c *gc.C) {
	g := Disconnected(c)

	path, found, err := s.find(g, "X", "Z")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, false)
	c.Assert(path, gc.IsNil)

	path, found, err = s.find(g, "X", "Y")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Assert(path, gc.DeepEquals, network.Path{"X", "Y"})
}

// TestUnknownVertex verifies that both endpoints are validated.
func (s *SuiteBase) TestUnknownVertex(c *gc.C) {
	g := Square(c)

	_, _, err := s.find(g, "missing", "A")
	c.Assert(errors.Is(err, network.ErrUnknownVertex), gc.Equals, true, gc.Commentf("got %v", err))

	_, _, err = s.find(g, "A", "missing")
	c.Assert(errors.Is(err, network.ErrUnknownVertex), gc.Equals, true, gc.Commentf("got %v", err))
}

// TestEveryPairOfReferenceNetwork checks validity and reachability for all
// ordered pairs of the builtin network plus an isolated vertex.
func (s *SuiteBase) TestEveryPairOfReferenceNetwork(c *gc.C) {
	g := ReferenceWithIsolated(c)
	components := Components(g)

	for _, from := range g.Vertices() {
		for _, to := range g.Vertices() {
			path, found, err := s.find(g, from, to)
			c.Assert(err, gc.IsNil)
			c.Assert(found, gc.Equals, components[from] == components[to], gc.Commentf("%s -> %s", from, to))
			if !found {
				c.Assert(path, gc.IsNil)
				continue
			}
			c.Assert(path.Validate(g), gc.IsNil, gc.Commentf("%s -> %s: %v", from, to, path))
			c.Assert(path.Start(), gc.Equals, from)
			c.Assert(path.End(), gc.Equals, to)
		}
	}
}

// Square returns the graph A-B, B-C, C-D, A-D.
func Square(c *gc.C) *network.Graph {
	g := network.NewGraph()
	for _, label := range []string{"A", "B", "C", "D"} {
		c.Assert(g.AddVertex(label, network.NodeTypeCompany), gc.IsNil)
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}} {
		c.Assert(g.AddEdge(e[0], e[1]), gc.IsNil)
	}
	return g
}

// Disconnected returns vertices X, Y, Z with the single edge X-Y.
func Disconnected(c *gc.C) *network.Graph {
	g := network.NewGraph()
	c.Assert(g.AddVertex("X", network.NodeTypeCompany), gc.IsNil)
	c.Assert(g.AddVertex("Y", network.NodeTypeBank), gc.IsNil)
	c.Assert(g.AddVertex("Z", network.NodeTypeBank), gc.IsNil)
	c.Assert(g.AddEdge("X", "Y"), gc.IsNil)
	return g
}

// ReferenceWithIsolated returns the builtin network plus an isolated bank.
func ReferenceWithIsolated(c *gc.C) *network.Graph {
	g, err := dataset.Builtin().Build()
	c.Assert(err, gc.IsNil)
	c.Assert(g.AddVertex("Offshore Trust", network.NodeTypeBank), gc.IsNil)
	return g
}

// Components labels every vertex with the index of its connected component,
// computed with union-find so it does not depend on either finder.
func Components(g *network.Graph) map[string]int {
	parent := make(map[string]string, g.Order())
	var find func(string) string
	find = func(v string) string {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}
	for _, v := range g.Vertices() {
		parent[v] = v
	}
	for _, e := range g.Edges() {
		parent[find(e.Source)] = find(e.Target)
	}

	ids := make(map[string]int)
	out := make(map[string]int, g.Order())
	for _, v := range g.Vertices() {
		root := find(v)
		if _, ok := ids[root]; !ok {
			ids[root] = len(ids)
		}
		out[v] = ids[root]
	}
	return out
}
