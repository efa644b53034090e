// Package repository persists financial networks in Neo4j. Institutions are
// stored as (:Institution {name, nodeType, seq}) nodes and relationships as
// [:FINANCES {weight, seq}] edges; seq preserves insertion order, which the
// path algorithms use to break ties.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/graph"
	"github.com/vanshika/finnet/internal/network"
)

// ErrEmptyNetwork is returned when the database holds no institutions.
var ErrEmptyNetwork = errors.New("no institutions stored in graph")

// Repository encapsulates graph persistence operations.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// EnsureSchema creates the uniqueness constraint on institution names.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, institutionConstraintCypher, nil); err != nil {
		return fmt.Errorf("ensure institution constraint: %w", err)
	}
	return nil
}

// LoadDataset reads every institution and relationship.
func (r *Repository) LoadDataset(ctx context.Context) (dataset.Dataset, error) {
	nodes, err := r.client.ExecuteRead(ctx, loadInstitutionsCypher, nil)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("load institutions: %w", err)
	}
	if len(nodes.Records) == 0 {
		return dataset.Dataset{}, ErrEmptyNetwork
	}

	ds := dataset.Dataset{Name: "neo4j"}
	for _, record := range nodes.Records {
		ds.Vertices = append(ds.Vertices, dataset.VertexSpec{
			Label: toString(record["name"]),
			Type:  toString(record["nodeType"]),
		})
	}

	edges, err := r.client.ExecuteRead(ctx, loadRelationshipsCypher, nil)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("load relationships: %w", err)
	}
	for _, record := range edges.Records {
		ds.Edges = append(ds.Edges, dataset.EdgeSpec{
			Source: toString(record["source"]),
			Target: toString(record["target"]),
			Weight: int(toInt64(record["weight"])),
		})
	}
	return ds, nil
}

// LoadNetwork reads the stored network and builds a graph from it.
func (r *Repository) LoadNetwork(ctx context.Context) (*network.Graph, error) {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}
	g, err := ds.Build()
	if err != nil {
		return nil, fmt.Errorf("build stored network: %w", err)
	}
	return g, nil
}

// SeedNetwork replaces the stored network with g in a single write
// transaction, so a failure leaves the previous network in place. Unweighted
// edges are stored without a weight property.
func (r *Repository) SeedNetwork(ctx context.Context, g *network.Graph) error {
	if g.Order() == 0 {
		return ErrEmptyNetwork
	}

	err := r.client.ExecuteWriteTx(ctx,
		graph.Statement{Cypher: clearNetworkCypher},
		graph.Statement{Cypher: upsertInstitutionsCypher, Params: map[string]any{
			"institutions": institutionParams(g),
		}},
		graph.Statement{Cypher: upsertRelationshipsCypher, Params: map[string]any{
			"relationships": relationshipParams(g.Edges()),
		}},
	)
	if err != nil {
		return fmt.Errorf("seed %d institutions and %d relationships: %w", g.Order(), g.Size(), err)
	}
	return nil
}

// Counts returns the number of stored institutions and relationships.
func (r *Repository) Counts(ctx context.Context) (institutions, relationships int, err error) {
	res, err := r.client.ExecuteRead(ctx, countNetworkCypher, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("count network: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, 0, nil
	}
	record := res.Records[0]
	return int(toInt64(record["institutions"])), int(toInt64(record["relationships"])), nil
}

func institutionParams(g *network.Graph) []map[string]any {
	out := make([]map[string]any, 0, g.Order())
	for i, label := range g.Vertices() {
		nodeType, _ := g.NodeType(label)
		out = append(out, map[string]any{
			"name":     label,
			"nodeType": string(nodeType),
			"seq":      int64(i),
		})
	}
	return out
}

func relationshipParams(edges []network.Edge) []map[string]any {
	out := make([]map[string]any, 0, len(edges))
	for i, edge := range edges {
		var weight any
		if edge.Weighted {
			weight = int64(edge.Weight)
		}
		out = append(out, map[string]any{
			"source": edge.Source,
			"target": edge.Target,
			"weight": weight,
			"seq":    int64(i),
		})
	}
	return out
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

const institutionConstraintCypher = `
CREATE CONSTRAINT institution_name IF NOT EXISTS
FOR (i:Institution) REQUIRE i.name IS UNIQUE
`

const clearNetworkCypher = `
MATCH (i:Institution)
DETACH DELETE i
`

const upsertInstitutionsCypher = `
UNWIND $institutions AS inst
MERGE (i:Institution {name: inst.name})
SET i.nodeType = inst.nodeType,
    i.seq = inst.seq
`

const upsertRelationshipsCypher = `
UNWIND $relationships AS rel
MATCH (a:Institution {name: rel.source})
MATCH (b:Institution {name: rel.target})
MERGE (a)-[f:FINANCES]->(b)
SET f.weight = rel.weight,
    f.seq = rel.seq
`

const loadInstitutionsCypher = `
MATCH (i:Institution)
RETURN i.name AS name,
       i.nodeType AS nodeType
ORDER BY coalesce(i.seq, 2147483647), i.name
`

const loadRelationshipsCypher = `
MATCH (a:Institution)-[f:FINANCES]->(b:Institution)
RETURN a.name AS source,
       b.name AS target,
       f.weight AS weight
ORDER BY coalesce(f.seq, 2147483647), a.name, b.name
`

const countNetworkCypher = `
MATCH (i:Institution)
OPTIONAL MATCH (i)-[f:FINANCES]->()
RETURN count(DISTINCT i) AS institutions,
       count(f) AS relationships
`
