package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/network"
	"github.com/vanshika/trafficroute/internal/traffic"
)

func newTestService(t *testing.T) *RouteService {
	t.Helper()
	net, err := network.New(domain.Network{
		Locations: []string{"A", "B", "C", "D"},
		Roads: []domain.Road{
			{From: "A", To: "B", TravelTime: 2},
			{From: "B", To: "C", TravelTime: 3},
			{From: "A", To: "C", TravelTime: 10},
		},
	})
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouteService(net, TrafficDefaults{Seed: 42, Intensity: 0.5}, logger)
}

func TestRouteService_FindRoute(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.FindRoute(ctx, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Route.Stops)
	assert.Equal(t, "A → B → C (5.0 min)", res.Summary.Text)
	assert.Equal(t, 2, res.Summary.StopCount)
	assert.Len(t, res.Route.Legs, 2)

	res, err = svc.FindRoute(ctx, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Summary.Found)
	assert.Equal(t, "No route found from A to D", res.Summary.Text)

	_, err = svc.FindRoute(ctx, "A", "Z")
	assert.ErrorIs(t, err, network.ErrInvalidNode)
}

func TestRouteService_UpdateRoad(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	road, err := svc.UpdateRoad(ctx, "B", "A", 20)
	require.NoError(t, err)
	assert.Equal(t, domain.Road{From: "B", To: "A", TravelTime: 20}, road)

	got, err := svc.Road("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.TravelTime)

	res, err := svc.FindRoute(ctx, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Route.Stops)
	assert.Equal(t, 10.0, res.Route.TotalTime)

	_, err = svc.UpdateRoad(ctx, "A", "B", 0)
	assert.ErrorIs(t, err, network.ErrInvalidWeight)
	_, err = svc.UpdateRoad(ctx, "A", "D", 4)
	assert.ErrorIs(t, err, network.ErrNotFound)
	_, err = svc.Road("C", "D")
	assert.ErrorIs(t, err, network.ErrNotFound)
}

func TestRouteService_Traffic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	seed := svc.Roads()

	intensity := 1.0
	roads, err := svc.SimulateTraffic(ctx, SimulationParams{Intensity: &intensity, Step: 3})
	require.NoError(t, err)
	require.Len(t, roads, len(seed))
	for i, r := range roads {
		assert.GreaterOrEqual(t, r.TravelTime, seed[i].TravelTime)
		assert.LessOrEqual(t, r.TravelTime, 2*seed[i].TravelTime)
	}

	again, err := svc.SimulateTraffic(ctx, SimulationParams{Intensity: &intensity, Step: 3})
	require.NoError(t, err)
	assert.Equal(t, roads, again)

	tooMuch := traffic.MaxIntensity + 1
	_, err = svc.SimulateTraffic(ctx, SimulationParams{Intensity: &tooMuch})
	assert.ErrorIs(t, err, traffic.ErrInvalidIntensity)

	assert.Equal(t, seed, svc.ResetTraffic(ctx))
	assert.Equal(t, seed, svc.Roads())
}

func TestRouteService_Diagram(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	plain, err := svc.Diagram(ctx, "", "")
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "digraph")
	assert.Contains(t, string(plain), "--")
	assert.Contains(t, string(plain), `"D"`)
	assert.NotContains(t, string(plain), "color=red")

	routed, err := svc.Diagram(ctx, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(routed), "color=red"))

	unreachable, err := svc.Diagram(ctx, "A", "D")
	require.NoError(t, err)
	assert.NotContains(t, string(unreachable), "color=red")

	_, err = svc.Diagram(ctx, "A", "Z")
	assert.ErrorIs(t, err, network.ErrInvalidNode)
}

func TestRouteService_Locations(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, []string{"A", "B", "C", "D"}, svc.Locations())
	assert.False(t, svc.Directed())
}
