package server

import (
	"context"
	"errors"

	"github.com/vanshika/finnet/internal/graph"
	"github.com/vanshika/finnet/internal/service"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// NetworkHealthService reports ready once a network is loaded and, when the
// network came from Neo4j, the database is still reachable.
type NetworkHealthService struct {
	Network *service.NetworkService
	Client  graph.Client
}

// Probe implements the HealthService interface.
func (s NetworkHealthService) Probe(ctx context.Context) error {
	if s.Network == nil || s.Network.Graph().Order() == 0 {
		return errors.New("network not loaded")
	}
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}
