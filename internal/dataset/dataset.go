// Package dataset describes financial networks as plain data so they can be
// stored in files, generated, or compiled into the binary, and turns those
// descriptions into network.Graph values.
package dataset

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/vanshika/finnet/internal/network"
)

// Dataset is the serialisable form of a network.
type Dataset struct {
	Name     string       `yaml:"name,omitempty" json:"name,omitempty"`
	Vertices []VertexSpec `yaml:"vertices" json:"vertices"`
	Edges    []EdgeSpec   `yaml:"edges" json:"edges"`
}

// VertexSpec describes one company or bank.
type VertexSpec struct {
	Label string `yaml:"label" json:"label"`
	Type  string `yaml:"type" json:"type"`
}

// EdgeSpec describes a relationship between two vertices. A zero Weight means
// the edge is unweighted.
type EdgeSpec struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Weight int    `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Build constructs a graph from the dataset. Every invalid row is reported in
// the returned error; if any row is invalid no graph is returned.
func (d Dataset) Build() (*network.Graph, error) {
	g := network.NewGraph()
	var result *multierror.Error

	for i, v := range d.Vertices {
		nodeType, err := network.ParseNodeType(v.Type)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("vertex #%d (%q): %w", i, v.Label, err))
			continue
		}
		if err := g.AddVertex(v.Label, nodeType); err != nil {
			result = multierror.Append(result, fmt.Errorf("vertex #%d: %w", i, err))
		}
	}

	for i, e := range d.Edges {
		var err error
		switch {
		case e.Weight < 0:
			err = fmt.Errorf("edge %q-%q: %w: %d", e.Source, e.Target, network.ErrInvalidWeight, e.Weight)
		case e.Weight > 0:
			err = g.AddWeightedEdge(e.Source, e.Target, e.Weight)
		default:
			err = g.AddEdge(e.Source, e.Target)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("edge #%d: %w", i, err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromGraph captures g as a Dataset, preserving vertex and edge order.
func FromGraph(name string, g *network.Graph) Dataset {
	ds := Dataset{Name: name}
	for _, label := range g.Vertices() {
		nodeType, _ := g.NodeType(label)
		ds.Vertices = append(ds.Vertices, VertexSpec{Label: label, Type: string(nodeType)})
	}
	for _, edge := range g.Edges() {
		spec := EdgeSpec{Source: edge.Source, Target: edge.Target}
		if edge.Weighted {
			spec.Weight = edge.Weight
		}
		ds.Edges = append(ds.Edges, spec)
	}
	return ds
}
