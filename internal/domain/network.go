package domain

// Road is a weighted connection between two locations. TravelTime is in minutes.
type Road struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	TravelTime float64 `json:"travelTime"`
}

// Network is the seed shape handed over by a data loader.
type Network struct {
	Directed  bool     `json:"directed,omitempty"`
	Locations []string `json:"locations,omitempty"`
	Roads     []Road   `json:"roads"`
}

// LocationSet returns the listed locations followed by any road endpoint not
// already listed, preserving first-mention order.
func (n Network) LocationSet() []string {
	seen := make(map[string]struct{}, len(n.Locations)+len(n.Roads))
	out := make([]string, 0, len(n.Locations))
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, name := range n.Locations {
		add(name)
	}
	for _, r := range n.Roads {
		add(r.From)
		add(r.To)
	}
	return out
}
