package traffic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/network"
)

func grid(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.New(domain.Network{Roads: []domain.Road{
		{From: "A", To: "B", TravelTime: 2},
		{From: "B", To: "C", TravelTime: 3},
		{From: "C", To: "D", TravelTime: 4},
		{From: "D", To: "A", TravelTime: 5},
		{From: "A", To: "C", TravelTime: 10},
	}})
	require.NoError(t, err)
	return n
}

func TestField_Range(t *testing.T) {
	f := NewField(7)
	for x := -10.0; x <= 10; x += 0.37 {
		for y := -10.0; y <= 10; y += 0.53 {
			v := f.At(x, y)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestField_Deterministic(t *testing.T) {
	a, b := NewField(99), NewField(99)
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.3, float64(i)*0.7
		assert.Equal(t, a.At(x, y), b.At(x, y))
	}
}

func TestNewSimulator_RejectsIntensity(t *testing.T) {
	for _, v := range []float64{-0.1, MaxIntensity + 0.1, math.NaN()} {
		_, err := NewSimulator(1, v)
		assert.ErrorIs(t, err, ErrInvalidIntensity, "intensity %v", v)
	}
	s, err := NewSimulator(1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Intensity())
}

func TestApply_BoundedBySeed(t *testing.T) {
	n := grid(t)
	s, err := NewSimulator(42, 2)
	require.NoError(t, err)

	roads, err := s.Apply(n, 3)
	require.NoError(t, err)

	seed := n.SeedRoads()
	require.Len(t, roads, len(seed))
	for i, r := range roads {
		assert.GreaterOrEqual(t, r.TravelTime, seed[i].TravelTime)
		assert.LessOrEqual(t, r.TravelTime, seed[i].TravelTime*3)
	}
	assert.Equal(t, roads, n.Roads())
}

func TestApply_DeterministicAndIdempotent(t *testing.T) {
	n1, n2 := grid(t), grid(t)
	s1, err := NewSimulator(42, 1)
	require.NoError(t, err)
	s2, err := NewSimulator(42, 1)
	require.NoError(t, err)

	r1, err := s1.Apply(n1, 1.5)
	require.NoError(t, err)
	r2, err := s2.Apply(n2, 1.5)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	// Applying twice starts from seed weights each time, so it does not compound.
	again, err := s1.Apply(n1, 1.5)
	require.NoError(t, err)
	assert.Equal(t, r1, again)
}

func TestApply_ZeroIntensityRestoresSeed(t *testing.T) {
	n := grid(t)
	require.NoError(t, n.SetWeight("A", "B", 40))

	s, err := NewSimulator(5, 0)
	require.NoError(t, err)
	roads, err := s.Apply(n, 0)
	require.NoError(t, err)
	assert.Equal(t, n.SeedRoads(), roads)
}
