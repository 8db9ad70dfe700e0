// Package diagram renders the road network as a Graphviz DOT document, with
// an optional route highlighted.
package diagram

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/format"
)

// Title is the label placed on top of every diagram.
const Title = "Road Network (weights = travel time in minutes)"

const (
	nodeColor      = "lightblue"
	roadColor      = "gray"
	routeColor     = "red"
	weightColor    = "darkgreen"
	roadPenWidth   = "2"
	routePenWidth  = "4"
	defaultGraphID = "roads"
)

// Render encodes the network. route is an ordered list of stops; every road
// between consecutive stops is drawn highlighted.
func Render(locations []string, roads []domain.Road, directed bool, route []string) ([]byte, error) {
	nodes := make(map[string]node, len(locations))
	for i, name := range locations {
		nodes[name] = node{id: int64(i), name: name}
	}

	highlight := make(map[[2]string]bool)
	for _, pair := range format.PathEdges(route) {
		highlight[pair] = true
		if !directed {
			highlight[[2]string{pair[1], pair[0]}] = true
		}
	}

	var g interface {
		graph.Graph
		graph.WeightedBuilder
	}
	if directed {
		g = &directedDiagram{simple.NewWeightedDirectedGraph(0, math.Inf(1)), Title}
	} else {
		g = &undirectedDiagram{simple.NewWeightedUndirectedGraph(0, math.Inf(1)), Title}
	}

	for _, name := range locations {
		g.AddNode(nodes[name])
	}
	for _, r := range roads {
		from, okFrom := nodes[r.From]
		to, okTo := nodes[r.To]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("road %s-%s references an unknown location", r.From, r.To)
		}
		g.SetWeightedEdge(edge{
			f:           from,
			t:           to,
			w:           r.TravelTime,
			highlighted: highlight[[2]string{r.From, r.To}],
		})
	}

	out, err := dot.Marshal(g, defaultGraphID, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("encode dot: %w", err)
	}
	return out, nil
}

type attributes []encoding.Attribute

func (a attributes) Attributes() []encoding.Attribute { return a }

type title string

func (t title) DOTAttributers() (g, n, e encoding.Attributer) {
	g = attributes{
		{Key: "label", Value: strconv.Quote(string(t))},
		{Key: "labelloc", Value: "t"},
	}
	n = attributes{
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: nodeColor},
	}
	e = attributes{
		{Key: "fontcolor", Value: weightColor},
	}
	return g, n, e
}

type undirectedDiagram struct {
	*simple.WeightedUndirectedGraph
	title
}

type directedDiagram struct {
	*simple.WeightedDirectedGraph
	title
}

type node struct {
	id   int64
	name string
}

func (n node) ID() int64     { return n.id }
func (n node) DOTID() string { return strconv.Quote(n.name) }

type edge struct {
	f, t        node
	w           float64
	highlighted bool
}

func (e edge) From() graph.Node         { return e.f }
func (e edge) To() graph.Node           { return e.t }
func (e edge) Weight() float64          { return e.w }
func (e edge) ReversedEdge() graph.Edge { return edge{f: e.t, t: e.f, w: e.w, highlighted: e.highlighted} }

func (e edge) Attributes() []encoding.Attribute {
	color, width := roadColor, roadPenWidth
	if e.highlighted {
		color, width = routeColor, routePenWidth
	}
	return []encoding.Attribute{
		{Key: "label", Value: strconv.Quote(format.Minutes(e.w))},
		{Key: "color", Value: color},
		{Key: "penwidth", Value: width},
	}
}
