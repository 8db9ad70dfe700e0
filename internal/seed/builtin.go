package seed

import "github.com/vanshika/trafficroute/internal/domain"

// Builtin returns the default demo city. Old Town has no roads, so asking
// for a route there yields "no route found".
func Builtin() Static {
	return Static{Network: domain.Network{
		Locations: []string{
			"Downtown",
			"Central Station",
			"University",
			"City Hospital",
			"Airport",
			"Shopping Mall",
			"Tech Park",
			"Harbor",
			"Stadium",
			"Old Town",
		},
		Roads: []domain.Road{
			{From: "Downtown", To: "Central Station", TravelTime: 5},
			{From: "Downtown", To: "University", TravelTime: 8},
			{From: "Downtown", To: "City Hospital", TravelTime: 6},
			{From: "Downtown", To: "Harbor", TravelTime: 15},
			{From: "Central Station", To: "Airport", TravelTime: 20},
			{From: "Central Station", To: "Shopping Mall", TravelTime: 9},
			{From: "University", To: "Tech Park", TravelTime: 7},
			{From: "University", To: "City Hospital", TravelTime: 4},
			{From: "City Hospital", To: "Shopping Mall", TravelTime: 11},
			{From: "Shopping Mall", To: "Airport", TravelTime: 14},
			{From: "Shopping Mall", To: "Harbor", TravelTime: 12},
			{From: "Tech Park", To: "Airport", TravelTime: 18},
			{From: "Tech Park", To: "Stadium", TravelTime: 10},
			{From: "Stadium", To: "Harbor", TravelTime: 6},
		},
	}}
}
