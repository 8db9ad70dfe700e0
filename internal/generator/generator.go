// Package generator synthesises random but well formed seed road networks.
package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/traffic"
)

const (
	mapSize    = 100.0
	fieldScale = 1.0 / 20
	minMinutes = 1.0
)

var (
	namePrefixes = []string{"North", "South", "East", "West", "Old", "New", "Upper", "Lower", "Little", "Great"}
	nameSuffixes = []string{"Market", "Bridge", "Park", "Heights", "Square", "Harbor", "Gate", "Mills", "Green", "Junction", "Field", "Cross"}
)

type point struct {
	x, y float64
}

func (p point) dist(q point) float64 {
	return math.Hypot(p.x-q.x, p.y-q.y)
}

// Generator produces seed networks where every location is reachable.
type Generator struct {
	cfg   Config
	rand  *rand.Rand
	field *traffic.Field
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumLocations <= 0 {
		cfg.NumLocations = DefaultConfig().NumLocations
	}
	if cfg.ExtraLinks < 0 {
		cfg.ExtraLinks = 0
	}
	if cfg.MinutesPerUnit <= 0 {
		cfg.MinutesPerUnit = DefaultConfig().MinutesPerUnit
	}
	if cfg.Congestion < 0 {
		cfg.Congestion = DefaultConfig().Congestion
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(cfg.Seed)),
		field: traffic.NewField(cfg.Seed),
	}
}

// Generate synthesises a network. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (domain.Network, error) {
	n := g.cfg.NumLocations
	names := g.names(n)
	points := make([]point, n)
	for i := range points {
		points[i] = point{x: g.rand.Float64() * mapSize, y: g.rand.Float64() * mapSize}
	}

	net := domain.Network{Directed: g.cfg.Directed, Locations: names}
	linked := make(map[[2]int]bool)
	link := func(a, b int) {
		key := [2]int{min(a, b), max(a, b)}
		if a == b || linked[key] {
			return
		}
		linked[key] = true
		net.Roads = append(net.Roads, g.road(names, points, a, b))
		if g.cfg.Directed {
			net.Roads = append(net.Roads, g.road(names, points, b, a))
		}
	}

	for i := 1; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return domain.Network{}, err
		}
		nearest := 0
		for j := 1; j < i; j++ {
			if points[i].dist(points[j]) < points[i].dist(points[nearest]) {
				nearest = j
			}
		}
		link(i, nearest)
	}

	if g.cfg.ExtraLinks > 0 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return domain.Network{}, err
			}
			for _, j := range g.nearest(points, i, g.cfg.ExtraLinks) {
				link(i, j)
			}
		}
	}

	return net, nil
}

// nearest returns up to k location indexes closest to i, excluding i.
func (g *Generator) nearest(points []point, i, k int) []int {
	others := make([]int, 0, len(points)-1)
	for j := range points {
		if j != i {
			others = append(others, j)
		}
	}
	sort.SliceStable(others, func(a, b int) bool {
		return points[i].dist(points[others[a]]) < points[i].dist(points[others[b]])
	})
	if len(others) > k {
		others = others[:k]
	}
	return others
}

func (g *Generator) road(names []string, points []point, a, b int) domain.Road {
	// Sample the field at a point a third of the way along, so the two
	// directions of a one-way pair congest differently.
	p := point{
		x: points[a].x + (points[b].x-points[a].x)/3,
		y: points[a].y + (points[b].y-points[a].y)/3,
	}
	congestion := g.field.At(p.x*fieldScale, p.y*fieldScale)
	minutes := points[a].dist(points[b]) * g.cfg.MinutesPerUnit * (1 + g.cfg.Congestion*congestion)
	minutes = math.Max(minMinutes, math.Round(minutes*10)/10)
	return domain.Road{From: names[a], To: names[b], TravelTime: minutes}
}

func (g *Generator) names(n int) []string {
	names := make([]string, n)
	seen := make(map[string]int, n)
	for i := range names {
		name := namePrefixes[g.rand.Intn(len(namePrefixes))] + " " + nameSuffixes[g.rand.Intn(len(nameSuffixes))]
		seen[name]++
		if c := seen[name]; c > 1 {
			name = fmt.Sprintf("%s %d", name, c)
		}
		names[i] = name
	}
	return names
}
