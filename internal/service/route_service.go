package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vanshika/trafficroute/internal/diagram"
	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/format"
	"github.com/vanshika/trafficroute/internal/network"
	"github.com/vanshika/trafficroute/internal/routing"
	"github.com/vanshika/trafficroute/internal/traffic"
)

// TrafficDefaults are used for simulation parameters a caller leaves out.
type TrafficDefaults struct {
	Seed      int64
	Intensity float64
}

// SimulationParams describes one congestion pass. Nil fields fall back to
// the service defaults.
type SimulationParams struct {
	Seed      *int64
	Intensity *float64
	Step      float64
}

// RouteResult is a computed route together with its presentation form.
type RouteResult struct {
	Route   domain.Route
	Summary format.Summary
}

// RouteService exposes the road network operations used by the API.
type RouteService struct {
	net      *network.Network
	defaults TrafficDefaults
	logger   *slog.Logger
}

// NewRouteService wires a RouteService around an initialised network.
func NewRouteService(net *network.Network, defaults TrafficDefaults, logger *slog.Logger) *RouteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RouteService{net: net, defaults: defaults, logger: logger}
}

// Directed reports whether roads are one-way.
func (s *RouteService) Directed() bool {
	return s.net.Directed()
}

// Locations lists every location in seed order.
func (s *RouteService) Locations() []string {
	return s.net.Locations()
}

// Roads lists every road with its current travel time.
func (s *RouteService) Roads() []domain.Road {
	return s.net.Roads()
}

// Road returns the road from a to b.
func (s *RouteService) Road(from, to string) (domain.Road, error) {
	w, err := s.net.Weight(from, to)
	if err != nil {
		return domain.Road{}, err
	}
	return domain.Road{From: from, To: to, TravelTime: w}, nil
}

// UpdateRoad sets a new travel time on an existing road.
func (s *RouteService) UpdateRoad(ctx context.Context, from, to string, travelTime float64) (domain.Road, error) {
	if err := s.net.SetWeight(from, to, travelTime); err != nil {
		return domain.Road{}, err
	}
	s.logger.InfoContext(ctx, "road updated", "from", from, "to", to, "travel_time", travelTime)
	return domain.Road{From: from, To: to, TravelTime: travelTime}, nil
}

// ResetTraffic restores every road to its seed travel time.
func (s *RouteService) ResetTraffic(ctx context.Context) []domain.Road {
	s.net.Reset()
	s.logger.InfoContext(ctx, "traffic reset")
	return s.net.Roads()
}

// SimulateTraffic overlays congestion on the seed travel times.
func (s *RouteService) SimulateTraffic(ctx context.Context, params SimulationParams) ([]domain.Road, error) {
	seed := s.defaults.Seed
	if params.Seed != nil {
		seed = *params.Seed
	}
	intensity := s.defaults.Intensity
	if params.Intensity != nil {
		intensity = *params.Intensity
	}

	sim, err := traffic.NewSimulator(seed, intensity)
	if err != nil {
		return nil, err
	}
	roads, err := sim.Apply(s.net, params.Step)
	if err != nil {
		return nil, fmt.Errorf("simulate traffic: %w", err)
	}
	s.logger.InfoContext(ctx, "traffic simulated", "seed", seed, "intensity", intensity, "step", params.Step, "roads", len(roads))
	return roads, nil
}

// FindRoute computes the quickest route between two locations.
func (s *RouteService) FindRoute(ctx context.Context, source, destination string) (RouteResult, error) {
	route, err := routing.FindShortestPath(s.net.Snapshot(), source, destination)
	if err != nil {
		return RouteResult{}, err
	}
	summary := format.FormatResult(route)
	s.logger.DebugContext(ctx, "route computed",
		"source", source,
		"destination", destination,
		"found", route.Found,
		"stops", summary.StopCount,
	)
	return RouteResult{Route: route, Summary: summary}, nil
}

// Diagram renders the network as DOT. When source and destination are both
// set and a route exists between them, that route is highlighted.
func (s *RouteService) Diagram(ctx context.Context, source, destination string) ([]byte, error) {
	var highlight []string
	if source != "" || destination != "" {
		res, err := s.FindRoute(ctx, source, destination)
		if err != nil {
			return nil, err
		}
		if res.Route.Found {
			highlight = res.Route.Stops
		}
	}
	return diagram.Render(s.net.Locations(), s.net.Roads(), s.net.Directed(), highlight)
}
