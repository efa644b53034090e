package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/graph"
	"github.com/vanshika/finnet/internal/network"
)

func TestRepository_LoadNetwork(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.SetResult(loadInstitutionsCypher, graph.Result{Records: []graph.Record{
		{"name": "Apple", "nodeType": "company"},
		{"name": "JP Morgan", "nodeType": "bank"},
		{"name": "Citigroup", "nodeType": "bank"},
	}})
	mem.SetResult(loadRelationshipsCypher, graph.Result{Records: []graph.Record{
		{"source": "Apple", "target": "JP Morgan", "weight": int64(4)},
		{"source": "Apple", "target": "Citigroup", "weight": nil},
	}})
	repo := New(mem)

	g, err := repo.LoadNetwork(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if g.Order() != 3 || g.Size() != 2 {
		t.Fatalf("expected 3 vertices and 2 edges, got %d and %d", g.Order(), g.Size())
	}
	if got := g.Vertices(); got[0] != "Apple" || got[2] != "Citigroup" {
		t.Fatalf("vertex order not preserved: %v", got)
	}

	w, err := g.EdgeWeight("JP Morgan", "Apple")
	if err != nil || w != 4 {
		t.Fatalf("expected weight 4, got %d (%v)", w, err)
	}
	edges := g.Edges()
	if edges[1].Weighted {
		t.Fatalf("edge without weight property must stay unweighted: %+v", edges[1])
	}

	if calls := mem.ReadCalls(); len(calls) != 2 {
		t.Fatalf("expected 2 read queries, got %d", len(calls))
	}
}

func TestRepository_LoadNetworkEmpty(t *testing.T) {
	repo := New(graph.NewMemoryClient())
	if _, err := repo.LoadNetwork(context.Background()); !errors.Is(err, ErrEmptyNetwork) {
		t.Fatalf("expected ErrEmptyNetwork, got %v", err)
	}
}

func TestRepository_LoadNetworkRejectsBadRows(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.SetResult(loadInstitutionsCypher, graph.Result{Records: []graph.Record{
		{"name": "Apple", "nodeType": "company"},
		{"name": "Mystery", "nodeType": "hedge-fund"},
	}})
	mem.SetResult(loadRelationshipsCypher, graph.Result{Records: []graph.Record{
		{"source": "Apple", "target": "Nowhere"},
	}})

	_, err := New(mem).LoadNetwork(context.Background())
	if !errors.Is(err, network.ErrInvalidNodeType) || !errors.Is(err, network.ErrUnknownVertex) {
		t.Fatalf("expected both row errors, got %v", err)
	}
}

func TestRepository_LoadNetworkPropagatesQueryErrors(t *testing.T) {
	boom := errors.New("boom")
	mem := graph.NewMemoryClient()
	mem.SetResult(loadInstitutionsCypher, graph.Result{Records: []graph.Record{{"name": "Apple", "nodeType": "company"}}})
	mem.FailOn(loadRelationshipsCypher, boom)

	if _, err := New(mem).LoadNetwork(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestRepository_SeedNetwork(t *testing.T) {
	g, err := dataset.Builtin().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := g.SetEdgeWeight("Apple", "JP Morgan", 7); err != nil {
		t.Fatalf("set weight: %v", err)
	}

	mem := graph.NewMemoryClient()
	if err := New(mem).SeedNetwork(context.Background(), g); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if committed, rolledBack := mem.Transactions(); committed != 1 || rolledBack != 0 {
		t.Fatalf("expected one committed transaction, got %d committed %d rolled back", committed, rolledBack)
	}
	calls := mem.WriteCalls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 write queries, got %d", len(calls))
	}
	if calls[0].Query != clearNetworkCypher {
		t.Fatalf("expected clear first, got:\n%s", calls[0].Query)
	}

	institutions, ok := calls[1].Params["institutions"].([]map[string]any)
	if !ok || len(institutions) != 10 {
		t.Fatalf("expected 10 institutions, got %T %v", calls[1].Params["institutions"], calls[1].Params["institutions"])
	}
	if institutions[5]["name"] != "JP Morgan" || institutions[5]["nodeType"] != "bank" || institutions[5]["seq"] != int64(5) {
		t.Errorf("unexpected institution row %v", institutions[5])
	}

	relationships, ok := calls[2].Params["relationships"].([]map[string]any)
	if !ok || len(relationships) != 13 {
		t.Fatalf("expected 13 relationships, got %v", calls[2].Params["relationships"])
	}
	if relationships[0]["weight"] != int64(7) {
		t.Errorf("expected weight 7 on first relationship, got %v", relationships[0]["weight"])
	}
	if relationships[1]["weight"] != nil {
		t.Errorf("unweighted edge should have nil weight, got %v", relationships[1]["weight"])
	}
}

func TestRepository_SeedNetworkIsAtomic(t *testing.T) {
	g, err := dataset.Builtin().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	boom := errors.New("constraint violated")
	mem := graph.NewMemoryClient()
	mem.FailOn(upsertRelationshipsCypher, boom)

	err = New(mem).SeedNetwork(context.Background(), g)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if committed, rolledBack := mem.Transactions(); committed != 0 || rolledBack != 1 {
		t.Fatalf("clear and upserts must share one rolled back transaction, got %d committed %d rolled back", committed, rolledBack)
	}
	if len(mem.WriteCalls()) != 3 {
		t.Fatalf("expected all three statements attempted in the transaction, got %d", len(mem.WriteCalls()))
	}
}

func TestRepository_SeedNetworkRejectsEmptyGraph(t *testing.T) {
	mem := graph.NewMemoryClient()
	if err := New(mem).SeedNetwork(context.Background(), network.NewGraph()); !errors.Is(err, ErrEmptyNetwork) {
		t.Fatalf("expected ErrEmptyNetwork, got %v", err)
	}
	if len(mem.WriteCalls()) != 0 {
		t.Fatal("no query should run for an empty graph")
	}
}

func TestRepository_Counts(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.SetResult(countNetworkCypher, graph.Result{Records: []graph.Record{{"institutions": int64(10), "relationships": int64(13)}}})

	nodes, rels, err := New(mem).Counts(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if nodes != 10 || rels != 13 {
		t.Fatalf("expected 10/13, got %d/%d", nodes, rels)
	}
}

func TestRepository_EnsureSchemaWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	mem := graph.NewMemoryClient().WithError(boom)
	if err := New(mem).EnsureSchema(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
