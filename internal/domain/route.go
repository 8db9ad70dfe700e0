package domain

// Leg is one traversed road of a route.
type Leg struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	TravelTime float64 `json:"travelTime"`
}

// Route is the outcome of a shortest-path query. When Found is false the
// destination is unreachable, Stops is empty and TotalTime is +Inf.
type Route struct {
	Source      string
	Destination string
	Stops       []string
	Legs        []Leg
	TotalTime   float64
	Found       bool
}

// StopCount is the number of roads travelled.
func (r Route) StopCount() int {
	if len(r.Stops) == 0 {
		return 0
	}
	return len(r.Stops) - 1
}
