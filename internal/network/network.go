// Package network holds the authoritative road network of a session: the
// locations, the roads between them and their current travel times.
//
// Topology is fixed when the Network is built from seed data. Only travel
// times change afterwards, through SetWeight, Reset or the traffic simulator.
package network

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/vanshika/trafficroute/internal/domain"
)

// weightedGraph is satisfied by both simple.WeightedUndirectedGraph and
// simple.WeightedDirectedGraph.
type weightedGraph interface {
	graph.Weighted
	graph.WeightedBuilder
}

type roadKey struct {
	from, to int64
}

// Network is the mutable graph store. It is safe for concurrent use.
type Network struct {
	mu       sync.RWMutex
	directed bool
	g        weightedGraph

	// names, ids, roads and seed are fixed after New.
	names []string
	ids   map[string]int64
	roads []roadKey
	seed  []float64
}

// New validates the seed network and builds the store. Location IDs follow
// the order of seed.LocationSet().
func New(seed domain.Network) (*Network, error) {
	names := seed.LocationSet()
	if len(names) == 0 {
		return nil, ErrEmptyNetwork
	}

	n := &Network{
		directed: seed.Directed,
		g:        newGraph(seed.Directed),
		names:    names,
		ids:      make(map[string]int64, len(names)),
		roads:    make([]roadKey, 0, len(seed.Roads)),
		seed:     make([]float64, 0, len(seed.Roads)),
	}

	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty location name", ErrInvalidNode)
		}
		n.ids[name] = int64(i)
		n.g.AddNode(simple.Node(i))
	}

	for _, r := range seed.Roads {
		if err := ValidateWeight(r.TravelTime); err != nil {
			return nil, fmt.Errorf("road %s-%s: %w", r.From, r.To, err)
		}
		from, to := n.ids[r.From], n.ids[r.To]
		if from == to {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, r.From)
		}
		if n.g.WeightedEdge(from, to) != nil {
			return nil, fmt.Errorf("%w: %s-%s", ErrDuplicateRoad, r.From, r.To)
		}
		n.g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(from), T: simple.Node(to), W: r.TravelTime})
		n.roads = append(n.roads, roadKey{from: from, to: to})
		n.seed = append(n.seed, r.TravelTime)
	}

	return n, nil
}

func newGraph(directed bool) weightedGraph {
	if directed {
		return simple.NewWeightedDirectedGraph(0, math.Inf(1))
	}
	return simple.NewWeightedUndirectedGraph(0, math.Inf(1))
}

// ValidateWeight reports whether w can be used as a travel time.
func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidWeight, w)
	}
	return nil
}

// Directed reports whether roads are one-way.
func (n *Network) Directed() bool {
	return n.directed
}

// Locations returns every location label in seed order.
func (n *Network) Locations() []string {
	return append([]string(nil), n.names...)
}

// HasLocation reports whether name is a location of the network.
func (n *Network) HasLocation(name string) bool {
	_, ok := n.ids[name]
	return ok
}

// Weight returns the current travel time of the road between a and b.
func (n *Network) Weight(a, b string) (float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	e, err := n.edge(a, b)
	if err != nil {
		return 0, err
	}
	return e.Weight(), nil
}

// SetWeight replaces the travel time of the road between a and b. The weight
// is validated before the road is looked up; on error nothing changes.
func (n *Network) SetWeight(a, b string, w float64) error {
	if err := ValidateWeight(w); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	e, err := n.edge(a, b)
	if err != nil {
		return err
	}
	n.g.SetWeightedEdge(simple.WeightedEdge{F: e.From(), T: e.To(), W: w})
	return nil
}

// Roads returns every road with its current travel time, in seed order.
func (n *Network) Roads() []domain.Road {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]domain.Road, len(n.roads))
	for i, k := range n.roads {
		out[i] = domain.Road{
			From:       n.names[k.from],
			To:         n.names[k.to],
			TravelTime: n.g.WeightedEdge(k.from, k.to).Weight(),
		}
	}
	return out
}

// SeedRoads returns every road with the travel time it was created with.
func (n *Network) SeedRoads() []domain.Road {
	out := make([]domain.Road, len(n.roads))
	for i, k := range n.roads {
		out[i] = domain.Road{From: n.names[k.from], To: n.names[k.to], TravelTime: n.seed[i]}
	}
	return out
}

// Reset restores every road to its seed travel time.
func (n *Network) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, k := range n.roads {
		n.g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(k.from), T: simple.Node(k.to), W: n.seed[i]})
	}
}

// Snapshot copies the current graph into an immutable view for path finding.
func (n *Network) Snapshot() *Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	dst := newGraph(n.directed)
	graph.CopyWeighted(dst, n.g)
	return &Snapshot{g: dst, names: n.names, ids: n.ids}
}

// edge must be called with n.mu held.
func (n *Network) edge(a, b string) (graph.WeightedEdge, error) {
	from, okA := n.ids[a]
	to, okB := n.ids[b]
	if !okA || !okB {
		return nil, fmt.Errorf("%w: %s-%s", ErrNotFound, a, b)
	}
	e := n.g.WeightedEdge(from, to)
	if e == nil {
		return nil, fmt.Errorf("%w: %s-%s", ErrNotFound, a, b)
	}
	return e, nil
}
