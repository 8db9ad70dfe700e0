package network

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/trafficroute/internal/domain"
)

func triangle() domain.Network {
	return domain.Network{
		Locations: []string{"A", "B", "C", "D"},
		Roads: []domain.Road{
			{From: "A", To: "B", TravelTime: 2},
			{From: "B", To: "C", TravelTime: 3},
			{From: "A", To: "C", TravelTime: 10},
		},
	}
}

func TestNew_Locations(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, n.Locations())
	assert.True(t, n.HasLocation("D"))
	assert.False(t, n.HasLocation("Z"))
	assert.False(t, n.Directed())
}

func TestNew_InfersLocationsFromRoads(t *testing.T) {
	n, err := New(domain.Network{Roads: []domain.Road{{From: "X", To: "Y", TravelTime: 1}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, n.Locations())
}

func TestNew_RejectsBadSeed(t *testing.T) {
	tests := []struct {
		name string
		seed domain.Network
		want error
	}{
		{"empty", domain.Network{}, ErrEmptyNetwork},
		{"zero weight", domain.Network{Roads: []domain.Road{{From: "A", To: "B", TravelTime: 0}}}, ErrInvalidWeight},
		{"negative weight", domain.Network{Roads: []domain.Road{{From: "A", To: "B", TravelTime: -1}}}, ErrInvalidWeight},
		{"nan weight", domain.Network{Roads: []domain.Road{{From: "A", To: "B", TravelTime: math.NaN()}}}, ErrInvalidWeight},
		{"self loop", domain.Network{Roads: []domain.Road{{From: "A", To: "A", TravelTime: 1}}}, ErrSelfLoop},
		{"duplicate", domain.Network{Roads: []domain.Road{
			{From: "A", To: "B", TravelTime: 1},
			{From: "B", To: "A", TravelTime: 4},
		}}, ErrDuplicateRoad},
		{"empty name", domain.Network{Roads: []domain.Road{{From: "", To: "B", TravelTime: 1}}}, ErrInvalidNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.seed)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_DirectedAllowsOppositeRoads(t *testing.T) {
	n, err := New(domain.Network{
		Directed: true,
		Roads: []domain.Road{
			{From: "A", To: "B", TravelTime: 1},
			{From: "B", To: "A", TravelTime: 4},
		},
	})
	require.NoError(t, err)

	ab, err := n.Weight("A", "B")
	require.NoError(t, err)
	ba, err := n.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, ab)
	assert.Equal(t, 4.0, ba)
}

func TestWeight(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	w, err := n.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	w, err = n.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w, "undirected roads are symmetric")

	_, err = n.Weight("A", "D")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = n.Weight("A", "Z")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWeight_DirectedIsOneWay(t *testing.T) {
	n, err := New(domain.Network{Directed: true, Roads: []domain.Road{{From: "A", To: "B", TravelTime: 3}}})
	require.NoError(t, err)

	_, err = n.Weight("B", "A")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetWeight(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	require.NoError(t, n.SetWeight("B", "A", 20))

	w, err := n.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 20.0, w)
}

func TestSetWeight_InvalidLeavesPriorWeight(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	for _, bad := range []float64{0, -1, -0.5, math.NaN(), math.Inf(1)} {
		err := n.SetWeight("A", "B", bad)
		assert.ErrorIs(t, err, ErrInvalidWeight, "weight %v", bad)

		w, err := n.Weight("A", "B")
		require.NoError(t, err)
		assert.Equal(t, 2.0, w)
	}
}

func TestSetWeight_WeightCheckedBeforeLookup(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	assert.ErrorIs(t, n.SetWeight("A", "D", -3), ErrInvalidWeight)
	assert.ErrorIs(t, n.SetWeight("A", "D", 3), ErrNotFound)
}

func TestRoadsAndReset(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	require.NoError(t, n.SetWeight("A", "B", 20))
	require.NoError(t, n.SetWeight("A", "C", 1.5))

	assert.Equal(t, []domain.Road{
		{From: "A", To: "B", TravelTime: 20},
		{From: "B", To: "C", TravelTime: 3},
		{From: "A", To: "C", TravelTime: 1.5},
	}, n.Roads())
	assert.Equal(t, triangle().Roads, n.SeedRoads())

	n.Reset()
	assert.Equal(t, triangle().Roads, n.Roads())
}

func TestSnapshot_IsolatedFromLaterEdits(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	snap := n.Snapshot()
	require.NoError(t, n.SetWeight("A", "B", 50))

	idA, ok := snap.LocationID("A")
	require.True(t, ok)
	idB, ok := snap.LocationID("B")
	require.True(t, ok)

	w, ok := snap.Weight(idA, idB)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, "B", snap.LocationName(idB))
	assert.Equal(t, "", snap.LocationName(99))
}

func TestSnapshot_FromIsOrdered(t *testing.T) {
	n, err := New(domain.Network{Roads: []domain.Road{
		{From: "hub", To: "e", TravelTime: 1},
		{From: "hub", To: "a", TravelTime: 1},
		{From: "hub", To: "d", TravelTime: 1},
		{From: "hub", To: "b", TravelTime: 1},
		{From: "hub", To: "c", TravelTime: 1},
	}})
	require.NoError(t, err)

	snap := n.Snapshot()
	hub, _ := snap.LocationID("hub")

	var got []string
	it := snap.From(hub)
	for it.Next() {
		got = append(got, snap.LocationName(it.Node().ID()))
	}
	assert.Equal(t, []string{"e", "a", "d", "b", "c"}, got)
}

func TestNetwork_ConcurrentEdits(t *testing.T) {
	n, err := New(triangle())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(2)
		go func(w float64) {
			defer wg.Done()
			_ = n.SetWeight("A", "B", w)
		}(float64(i))
		go func() {
			defer wg.Done()
			_ = n.Snapshot()
			_ = n.Roads()
		}()
	}
	wg.Wait()

	w, err := n.Weight("A", "B")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, w, 1.0)
}
