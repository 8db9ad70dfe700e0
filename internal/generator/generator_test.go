package generator

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/trafficroute/internal/network"
	"github.com/vanshika/trafficroute/internal/routing"
	"github.com/vanshika/trafficroute/internal/seed"
)

func TestGenerate_ProducesConnectedValidNetwork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumLocations = 40
	net, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, net.Locations, 40)
	store, err := network.New(net)
	require.NoError(t, err, "generated networks satisfy the loader contract")

	snap := store.Snapshot()
	for _, dst := range net.Locations[1:] {
		route, err := routing.FindShortestPath(snap, net.Locations[0], dst)
		require.NoError(t, err)
		assert.True(t, route.Found, "%s is reachable", dst)
	}

	for _, r := range net.Roads {
		assert.GreaterOrEqual(t, r.TravelTime, 1.0)
		assert.InDelta(t, math.Round(r.TravelTime*10), r.TravelTime*10, 1e-9)
	}
}

func TestGenerate_Directed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumLocations = 15
	cfg.Directed = true
	net, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, net.Directed)

	store, err := network.New(net)
	require.NoError(t, err)
	snap := store.Snapshot()
	last := net.Locations[len(net.Locations)-1]
	route, err := routing.FindShortestPath(snap, last, net.Locations[0])
	require.NoError(t, err)
	assert.True(t, route.Found, "one-way pairs keep the network strongly connected")
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{NumLocations: 12, ExtraLinks: 1, Seed: 7}
	first, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)
	second, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_SingleLocation(t *testing.T) {
	net, err := New(Config{NumLocations: 1, ExtraLinks: 3, Seed: 1}).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, net.Locations, 1)
	assert.Empty(t, net.Roads)
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(DefaultConfig()).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteNetwork_RoundTrip(t *testing.T) {
	net, err := New(Config{NumLocations: 8, Seed: 3}).Generate(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "network.json")
	require.NoError(t, WriteNetwork(net, path))

	loaded, err := seed.FileLoader{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, net, loaded)
}
