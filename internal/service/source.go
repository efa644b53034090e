package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/vanshika/finnet/internal/config"
	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/network"
)

// NetworkLoader reads a stored network. *repository.Repository satisfies it.
type NetworkLoader interface {
	LoadNetwork(ctx context.Context) (*network.Graph, error)
}

// ErrNoLoader is returned when the neo4j source is selected without a loader.
var ErrNoLoader = errors.New("neo4j source requires a graph connection")

// LoadGraph builds the graph selected by cfg and returns it with a display
// name. loader is only consulted for config.SourceNeo4j.
func LoadGraph(ctx context.Context, cfg config.NetworkConfig, loader NetworkLoader) (*network.Graph, string, error) {
	switch cfg.Source {
	case config.SourceBuiltin, "":
		g, err := dataset.Builtin().Build()
		return g, dataset.BuiltinName, err
	case config.SourceFile:
		ds, err := dataset.Load(cfg.Dataset)
		if err != nil {
			return nil, "", err
		}
		g, err := ds.Build()
		if err != nil {
			return nil, "", fmt.Errorf("dataset %s: %w", cfg.Dataset, err)
		}
		name := ds.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(cfg.Dataset), filepath.Ext(cfg.Dataset))
		}
		return g, name, nil
	case config.SourceNeo4j:
		if loader == nil {
			return nil, "", ErrNoLoader
		}
		g, err := loader.LoadNetwork(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("load network from neo4j: %w", err)
		}
		return g, "neo4j", nil
	default:
		return nil, "", fmt.Errorf("%w: unknown network source %q", ErrInvalidInput, cfg.Source)
	}
}

// WeightPolicy returns the random weight policy configured by cfg. A zero
// seed draws a seed from the clock.
func WeightPolicy(cfg config.NetworkConfig) network.WeightPolicy {
	seed := cfg.WeightSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return network.RandomWeights(rand.New(rand.NewSource(seed)), cfg.MinWeight, cfg.MaxWeight)
}
