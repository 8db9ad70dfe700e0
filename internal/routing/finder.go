// Package routing computes fastest routes over a road network snapshot with
// Dijkstra's algorithm, as implemented by gonum's graph/path package.
package routing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/network"
)

// ErrInvalidNode is returned when the source or destination is not a location.
var ErrInvalidNode = network.ErrInvalidNode

// Graph is the read-only view searched by FindShortestPath.
// *network.Snapshot satisfies it.
type Graph interface {
	graph.Graph
	Weight(xid, yid int64) (w float64, ok bool)
	LocationID(name string) (int64, bool)
	LocationName(id int64) string
}

// FindShortestPath returns the minimum travel time route from source to
// destination. An unreachable destination is not an error: the route comes
// back with Found unset and an infinite TotalTime.
//
// When several routes share the minimum cost, the one reported depends on
// neighbour iteration order, which for a network snapshot is seed order.
func FindShortestPath(g Graph, source, destination string) (domain.Route, error) {
	src, ok := g.LocationID(source)
	if !ok {
		return domain.Route{}, fmt.Errorf("%w: %q", ErrInvalidNode, source)
	}
	dst, ok := g.LocationID(destination)
	if !ok {
		return domain.Route{}, fmt.Errorf("%w: %q", ErrInvalidNode, destination)
	}

	route := domain.Route{
		Source:      source,
		Destination: destination,
		TotalTime:   math.Inf(1),
	}

	if src == dst {
		route.Stops = []string{source}
		route.TotalTime = 0
		route.Found = true
		return route, nil
	}

	shortest := path.DijkstraFrom(g.Node(src), g)
	nodes, weight := shortest.To(dst)
	if len(nodes) == 0 || math.IsInf(weight, 1) {
		return route, nil
	}

	stops := make([]string, len(nodes))
	for i, n := range nodes {
		stops[i] = g.LocationName(n.ID())
	}

	legs, err := Legs(g, stops)
	if err != nil {
		return domain.Route{}, err
	}

	route.Stops = stops
	route.Legs = legs
	route.TotalTime = weight
	route.Found = true
	return route, nil
}

// Legs resolves the travel time of each consecutive pair of stops.
func Legs(g Graph, stops []string) ([]domain.Leg, error) {
	if len(stops) < 2 {
		return nil, nil
	}
	legs := make([]domain.Leg, 0, len(stops)-1)
	for i := 1; i < len(stops); i++ {
		from, okFrom := g.LocationID(stops[i-1])
		to, okTo := g.LocationID(stops[i])
		if !okFrom || !okTo {
			return nil, fmt.Errorf("%w: %s-%s", ErrInvalidNode, stops[i-1], stops[i])
		}
		w, ok := g.Weight(from, to)
		if !ok || math.IsInf(w, 1) {
			return nil, fmt.Errorf("%w: %s-%s", network.ErrNotFound, stops[i-1], stops[i])
		}
		legs = append(legs, domain.Leg{From: stops[i-1], To: stops[i], TravelTime: w})
	}
	return legs, nil
}
