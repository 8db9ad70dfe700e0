package server

import (
	"context"

	"github.com/vanshika/trafficroute/internal/graphdb"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// GraphHealthService reports the graph database as part of health checks.
// Without a client the probe always passes.
type GraphHealthService struct {
	Client graphdb.Client
}

// Probe implements the HealthService interface.
func (s GraphHealthService) Probe(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}
