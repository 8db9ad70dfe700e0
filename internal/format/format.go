// Package format turns routes into display-ready summaries.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vanshika/trafficroute/internal/domain"
)

const stopSeparator = " → "

// Summary is what the presentation layer shows for a route query. TotalTime
// and StopCount are zero when Found is false.
type Summary struct {
	Source      string
	Destination string
	Stops       []string
	TotalTime   float64
	StopCount   int
	Found       bool
	Text        string
}

// FormatResult summarises a route.
func FormatResult(route domain.Route) Summary {
	s := Summary{
		Source:      route.Source,
		Destination: route.Destination,
		Found:       route.Found,
	}
	if !route.Found {
		s.Stops = []string{}
		s.Text = fmt.Sprintf("No route found from %s to %s", route.Source, route.Destination)
		return s
	}

	s.Stops = append([]string(nil), route.Stops...)
	s.TotalTime = route.TotalTime
	s.StopCount = route.StopCount()
	s.Text = fmt.Sprintf("%s (%s)", strings.Join(s.Stops, stopSeparator), Minutes(route.TotalTime))
	return s
}

// PathEdges pairs up consecutive stops, e.g. for highlighting a route on a diagram.
func PathEdges(stops []string) [][2]string {
	if len(stops) < 2 {
		return nil
	}
	edges := make([][2]string, 0, len(stops)-1)
	for i := 1; i < len(stops); i++ {
		edges = append(edges, [2]string{stops[i-1], stops[i]})
	}
	return edges
}

// Minutes renders a travel time with one decimal, e.g. "5.0 min".
func Minutes(m float64) string {
	return strconv.FormatFloat(m, 'f', 1, 64) + " min"
}
