// Package traffic simulates congestion on a road network with a seeded
// OpenSimplex noise field.
package traffic

import (
	"errors"
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vanshika/trafficroute/internal/domain"
)

// MaxIntensity bounds how much congestion can multiply a travel time: a road
// never gets slower than (1 + MaxIntensity) times its seed travel time.
const MaxIntensity = 5.0

const (
	defaultScale = 1.0
	roadSpacing  = 0.61
	stepScale    = 0.25
)

// ErrInvalidIntensity indicates an intensity outside [0, MaxIntensity].
var ErrInvalidIntensity = errors.New("traffic intensity out of range")

// Field is a smooth 2D noise field normalised to [0, 1].
type Field struct {
	noise opensimplex.Noise
	scale float64
}

// NewField returns a field that is fully determined by seed.
func NewField(seed int64) *Field {
	return &Field{noise: opensimplex.New(seed), scale: defaultScale}
}

// At samples the field.
func (f *Field) At(x, y float64) float64 {
	v := (f.noise.Eval2(x*f.scale, y*f.scale) + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Store is the part of the road network the simulator writes to.
type Store interface {
	SeedRoads() []domain.Road
	Roads() []domain.Road
	SetWeight(a, b string, w float64) error
}

// Simulator derives congested travel times from seed travel times.
type Simulator struct {
	field     *Field
	intensity float64
}

// NewSimulator returns a simulator with the given seed and intensity.
func NewSimulator(seed int64, intensity float64) (*Simulator, error) {
	if math.IsNaN(intensity) || intensity < 0 || intensity > MaxIntensity {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntensity, intensity)
	}
	return &Simulator{field: NewField(seed), intensity: intensity}, nil
}

// Intensity returns the configured intensity.
func (s *Simulator) Intensity() float64 {
	return s.intensity
}

// Congestion is the congestion level in [0, 1] of the i-th road at step.
func (s *Simulator) Congestion(road int, step float64) float64 {
	return s.field.At(float64(road)*roadSpacing, step*stepScale)
}

// Apply rewrites every road's travel time to its congested value at step and
// returns the updated roads. Congested times are never below seed times.
func (s *Simulator) Apply(store Store, step float64) ([]domain.Road, error) {
	for i, r := range store.SeedRoads() {
		w := r.TravelTime * (1 + s.intensity*s.Congestion(i, step))
		if err := store.SetWeight(r.From, r.To, w); err != nil {
			return nil, fmt.Errorf("apply congestion to %s-%s: %w", r.From, r.To, err)
		}
	}
	return store.Roads(), nil
}
