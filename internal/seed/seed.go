// Package seed provides the road networks a session starts from.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/network"
)

// Loader produces the seed network.
type Loader interface {
	Load(ctx context.Context) (domain.Network, error)
}

// Validate checks the loader contract: at least one location, named
// endpoints, positive finite travel times, no self or duplicate roads.
func Validate(net domain.Network) error {
	_, err := network.New(net)
	return err
}

// Static serves a fixed network.
type Static struct {
	Network domain.Network
}

// Load implements Loader.
func (s Static) Load(context.Context) (domain.Network, error) {
	net := s.Network
	net.Locations = append([]string(nil), s.Network.Locations...)
	net.Roads = append([]domain.Road(nil), s.Network.Roads...)
	return net, nil
}

// FileLoader reads a seed network from a JSON file.
type FileLoader struct {
	Path string
	// Directed, when set, overrides the file's own "directed" flag.
	Directed *bool
}

// Load implements Loader.
func (f FileLoader) Load(ctx context.Context) (domain.Network, error) {
	if err := ctx.Err(); err != nil {
		return domain.Network{}, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return domain.Network{}, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer file.Close()

	var net domain.Network
	if err := json.NewDecoder(file).Decode(&net); err != nil {
		return domain.Network{}, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	if f.Directed != nil {
		net.Directed = *f.Directed
	}
	return net, nil
}

// NetworkReader is the repository method GraphLoader needs.
type NetworkReader interface {
	LoadNetwork(ctx context.Context) (domain.Network, error)
}

// GraphLoader reads the seed network from the graph database.
type GraphLoader struct {
	Repo     NetworkReader
	Directed bool
}

// Load implements Loader.
func (g GraphLoader) Load(ctx context.Context) (domain.Network, error) {
	net, err := g.Repo.LoadNetwork(ctx)
	if err != nil {
		return domain.Network{}, fmt.Errorf("load network from graph: %w", err)
	}
	net.Directed = g.Directed
	return net, nil
}

// LoadNetwork runs the loader, validates its output and builds the store.
func LoadNetwork(ctx context.Context, l Loader) (*network.Network, error) {
	net, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	n, err := network.New(net)
	if err != nil {
		return nil, fmt.Errorf("invalid seed network: %w", err)
	}
	return n, nil
}
