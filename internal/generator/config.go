package generator

// Config drives the synthetic road network generator.
type Config struct {
	NumLocations int
	// ExtraLinks is how many additional nearest neighbours each location is
	// joined to beyond the one that keeps the network connected.
	ExtraLinks     int
	MinutesPerUnit float64
	// Congestion scales the noise field applied on top of distance.
	Congestion float64
	Directed   bool
	Seed       int64
}

// DefaultConfig returns settings for a mid-sized city.
func DefaultConfig() Config {
	return Config{
		NumLocations:   25,
		ExtraLinks:     2,
		MinutesPerUnit: 0.5,
		Congestion:     0.5,
		Seed:           42,
	}
}
