package network

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// Snapshot is a read-only copy of the network taken at one instant. It
// implements graph.Weighted; node iteration is in ascending ID order, which
// is seed order, so graph searches over it break ties deterministically.
type Snapshot struct {
	g     graph.Weighted
	names []string
	ids   map[string]int64
}

// LocationID maps a location label to its node ID.
func (s *Snapshot) LocationID(name string) (int64, bool) {
	id, ok := s.ids[name]
	return id, ok
}

// LocationName maps a node ID back to its label.
func (s *Snapshot) LocationName(id int64) string {
	if id < 0 || id >= int64(len(s.names)) {
		return ""
	}
	return s.names[id]
}

// Node implements graph.Graph.
func (s *Snapshot) Node(id int64) graph.Node { return s.g.Node(id) }

// Nodes implements graph.Graph.
func (s *Snapshot) Nodes() graph.Nodes { return ordered(s.g.Nodes()) }

// From implements graph.Graph.
func (s *Snapshot) From(id int64) graph.Nodes { return ordered(s.g.From(id)) }

// HasEdgeBetween implements graph.Graph.
func (s *Snapshot) HasEdgeBetween(xid, yid int64) bool { return s.g.HasEdgeBetween(xid, yid) }

// Edge implements graph.Graph.
func (s *Snapshot) Edge(uid, vid int64) graph.Edge { return s.g.Edge(uid, vid) }

// WeightedEdge implements graph.Weighted.
func (s *Snapshot) WeightedEdge(uid, vid int64) graph.WeightedEdge { return s.g.WeightedEdge(uid, vid) }

// Weight implements graph.Weighted.
func (s *Snapshot) Weight(xid, yid int64) (float64, bool) { return s.g.Weight(xid, yid) }

func ordered(it graph.Nodes) graph.Nodes {
	nodes := graph.NodesOf(it)
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return iterator.NewOrderedNodes(nodes)
}
