package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/graphdb"
)

// Repository maps road networks onto the graph database schema
// (:Location {name})-[:ROAD {travelTime}]->(:Location).
type Repository struct {
	client graphdb.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graphdb.Client) *Repository {
	return &Repository{client: client}
}

// EnsureSchema creates the uniqueness constraint on location names.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, locationConstraintCypher, nil); err != nil {
		return fmt.Errorf("ensure location constraint: %w", err)
	}
	return nil
}

// UpsertLocation ensures a location node exists.
func (r *Repository) UpsertLocation(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("location name is required")
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertLocationCypher, map[string]any{"name": name}); err != nil {
		return fmt.Errorf("upsert location %s: %w", name, err)
	}
	return nil
}

// UpsertRoad creates or updates the road between two existing locations.
func (r *Repository) UpsertRoad(ctx context.Context, road domain.Road) error {
	if road.From == "" || road.To == "" {
		return errors.New("both road endpoints are required")
	}

	params := map[string]any{
		"from":       road.From,
		"to":         road.To,
		"travelTime": road.TravelTime,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertRoadCypher, params); err != nil {
		return fmt.Errorf("upsert road %s-%s: %w", road.From, road.To, err)
	}
	return nil
}

// LoadNetwork reads every location and road. Directedness is not stored in
// the database; callers set it from configuration.
func (r *Repository) LoadNetwork(ctx context.Context) (domain.Network, error) {
	locRes, err := r.client.ExecuteRead(ctx, listLocationsCypher, nil)
	if err != nil {
		return domain.Network{}, fmt.Errorf("list locations: %w", err)
	}
	roadRes, err := r.client.ExecuteRead(ctx, listRoadsCypher, nil)
	if err != nil {
		return domain.Network{}, fmt.Errorf("list roads: %w", err)
	}

	net := domain.Network{
		Locations: make([]string, 0, len(locRes.Records)),
		Roads:     make([]domain.Road, 0, len(roadRes.Records)),
	}
	for _, rec := range locRes.Records {
		if name := toString(rec["name"]); name != "" {
			net.Locations = append(net.Locations, name)
		}
	}
	for _, rec := range roadRes.Records {
		net.Roads = append(net.Roads, domain.Road{
			From:       toString(rec["from"]),
			To:         toString(rec["to"]),
			TravelTime: toFloat64(rec["travelTime"]),
		})
	}
	return net, nil
}

// CountRoads returns the number of stored roads.
func (r *Repository) CountRoads(ctx context.Context) (int64, error) {
	res, err := r.client.ExecuteRead(ctx, countRoadsCypher, nil)
	if err != nil {
		return 0, fmt.Errorf("count roads: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return toInt64(res.Records[0]["total"]), nil
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toFloat64(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

const locationConstraintCypher = `
CREATE CONSTRAINT location_name IF NOT EXISTS
FOR (l:Location) REQUIRE l.name IS UNIQUE
`

const upsertLocationCypher = `
MERGE (l:Location {name: $name})
RETURN l.name AS name
`

const upsertRoadCypher = `
MATCH (a:Location {name: $from})
MATCH (b:Location {name: $to})
MERGE (a)-[r:ROAD]->(b)
SET r.travelTime = $travelTime
RETURN a.name AS from, b.name AS to, r.travelTime AS travelTime
`

const listLocationsCypher = `
MATCH (l:Location)
RETURN l.name AS name
ORDER BY name
`

const listRoadsCypher = `
MATCH (a:Location)-[r:ROAD]->(b:Location)
RETURN a.name AS from, b.name AS to, r.travelTime AS travelTime
ORDER BY from, to
`

const countRoadsCypher = `
MATCH (:Location)-[r:ROAD]->(:Location)
RETURN count(r) AS total
`
