package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vanshika/finnet/internal/analysis"
	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/pathfind"
	"github.com/vanshika/finnet/internal/shortestpath"
)

// Options tune a NetworkService.
type Options struct {
	// Name labels the network in snapshots and logs.
	Name string
	// Weights is applied when the graph arrives without any edge weight.
	// Nil leaves unweighted edges at network.DefaultWeight.
	Weights network.WeightPolicy
	// Workers bounds the parallelism of all-pairs and batch queries.
	Workers int
	Logger  *slog.Logger
}

// NetworkService answers path and analysis queries over one frozen network.
// All methods are safe for concurrent use.
type NetworkService struct {
	graph   *network.Graph
	name    string
	workers int
	logger  *slog.Logger
}

// NewNetworkService takes ownership of g: it assigns weights when g has none
// and freezes the topology. g must not be modified afterwards.
func NewNetworkService(g *network.Graph, opts Options) (*NetworkService, error) {
	if g == nil {
		return nil, errors.New("network graph is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	if opts.Weights != nil && !g.Weighted() {
		if err := network.AssignWeights(g, opts.Weights); err != nil {
			return nil, fmt.Errorf("assign edge weights: %w", err)
		}
		logger.Debug("assigned edge weights", "edges", g.Size())
	}
	g.Freeze()

	logger.Info("network ready",
		"name", opts.Name,
		"vertices", g.Order(),
		"edges", g.Size(),
		"weighted", g.Weighted(),
	)

	return &NetworkService{
		graph:   g,
		name:    opts.Name,
		workers: workers,
		logger:  logger,
	}, nil
}

// FindPath runs the requested unweighted search between two vertices.
func (s *NetworkService) FindPath(ctx context.Context, query PathQuery) (PathResult, error) {
	if err := ctx.Err(); err != nil {
		return PathResult{}, err
	}
	from, err := normalizeLabel("from", query.From)
	if err != nil {
		return PathResult{}, err
	}
	to, err := normalizeLabel("to", query.To)
	if err != nil {
		return PathResult{}, err
	}
	algorithm := query.Algorithm
	if algorithm == "" {
		algorithm = pathfind.AlgorithmBFS
	}
	find, err := pathfind.Lookup(algorithm)
	if err != nil {
		return PathResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	path, found, err := find(s.graph, from, to)
	if err != nil {
		return PathResult{}, err
	}
	result := PathResult{Algorithm: algorithm, From: from, To: to, Found: found}
	if !found {
		return result, nil
	}
	weight, err := path.Weight(s.graph)
	if err != nil {
		return PathResult{}, err
	}
	result.Path = path
	result.Hops = path.Hops()
	result.Weight = weight
	return result, nil
}

// ShortestPaths returns the weighted shortest route from source to every other
// vertex.
func (s *NetworkService) ShortestPaths(ctx context.Context, source string) (ShortestPaths, error) {
	if err := ctx.Err(); err != nil {
		return ShortestPaths{}, err
	}
	source, err := normalizeLabel("source", source)
	if err != nil {
		return ShortestPaths{}, err
	}
	res, err := shortestpath.Dijkstra(s.graph, source)
	if err != nil {
		return ShortestPaths{}, err
	}
	routes, err := shortestpath.Routes(res)
	if err != nil {
		return ShortestPaths{}, err
	}
	return ShortestPaths{Source: source, Routes: routes}, nil
}

// ShortestPath returns the weighted shortest route between two vertices. An
// unreachable target is reported through Route.Reachable, not an error.
func (s *NetworkService) ShortestPath(ctx context.Context, source, target string) (shortestpath.Route, error) {
	if err := ctx.Err(); err != nil {
		return shortestpath.Route{}, err
	}
	source, err := normalizeLabel("source", source)
	if err != nil {
		return shortestpath.Route{}, err
	}
	target, err = normalizeLabel("target", target)
	if err != nil {
		return shortestpath.Route{}, err
	}
	if !s.graph.HasVertex(target) {
		return shortestpath.Route{}, fmt.Errorf("target %q: %w", target, network.ErrUnknownVertex)
	}

	res, err := shortestpath.Dijkstra(s.graph, source)
	if err != nil {
		return shortestpath.Route{}, err
	}
	path, reachable, err := res.PathTo(target)
	if err != nil {
		return shortestpath.Route{}, err
	}
	route := shortestpath.Route{
		Source:    source,
		Target:    target,
		Distance:  shortestpath.Infinity,
		Path:      path,
		Reachable: reachable,
	}
	if reachable {
		route.Distance = res.Distances[target]
	}
	return route, nil
}

// AllShortestPaths runs Dijkstra from every vertex, in vertex order.
func (s *NetworkService) AllShortestPaths(ctx context.Context) ([]ShortestPaths, error) {
	results, err := shortestpath.AllPairs(ctx, s.graph, s.workers)
	if err != nil {
		return nil, err
	}
	out := make([]ShortestPaths, 0, len(results))
	for _, res := range results {
		routes, err := shortestpath.Routes(res)
		if err != nil {
			return nil, err
		}
		out = append(out, ShortestPaths{Source: res.Source, Routes: routes})
	}
	s.logger.Debug("computed all shortest paths", "sources", len(out))
	return out, nil
}

// Summary reports counts, degrees and the topN most central vertices.
func (s *NetworkService) Summary(ctx context.Context, topN int) (analysis.Summary, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Summary{}, err
	}
	return analysis.Summarize(s.graph, topN)
}

// Snapshot returns the network as a dataset, including assigned weights.
func (s *NetworkService) Snapshot() dataset.Dataset {
	return dataset.FromGraph(s.name, s.graph)
}

// Name returns the network name.
func (s *NetworkService) Name() string { return s.name }

// Graph exposes the frozen network for read-only use.
func (s *NetworkService) Graph() *network.Graph { return s.graph }
