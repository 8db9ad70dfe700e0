package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/vanshika/trafficroute/internal/config"
	"github.com/vanshika/trafficroute/internal/graphdb"
	"github.com/vanshika/trafficroute/internal/logging"
	"github.com/vanshika/trafficroute/internal/repository"
	"github.com/vanshika/trafficroute/internal/seed"
	"github.com/vanshika/trafficroute/internal/server"
	"github.com/vanshika/trafficroute/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	var graphClient graphdb.Client
	if cfg.Graph.URI != "" {
		client, err := graphdb.NewNeo4jClient(ctx, graphOptions(cfg.Graph))
		if err != nil {
			return fmt.Errorf("create graph client: %w", err)
		}
		defer func() {
			if err := client.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}()
		graphClient = client
	}

	loader, source := selectLoader(cfg, graphClient)
	store, err := seed.LoadNetwork(ctx, loader)
	if err != nil {
		return fmt.Errorf("load %s network: %w", source, err)
	}
	logger.Info("road network loaded",
		"source", source,
		"locations", len(store.Locations()),
		"roads", len(store.Roads()),
		"directed", store.Directed(),
	)

	svc := service.NewRouteService(store, service.TrafficDefaults{
		Seed:      cfg.Traffic.Seed,
		Intensity: cfg.Traffic.Intensity,
	}, logger.With("component", "routes"))

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.GraphHealthService{Client: graphClient},
		API:              server.NewAPIHandlers(logger, svc),
		AllowedOrigins:   server.ParseOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)
	ln, err := listen(net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port)))
	if err != nil {
		return err
	}
	return srv.Run(ctx, ln)
}

// selectLoader picks the seed source: the graph database when configured,
// then a seed file, then the built-in city. NETWORK_DIRECTED=true forces
// one-way roads; otherwise a seed file keeps its own flag.
func selectLoader(cfg config.Config, client graphdb.Client) (seed.Loader, string) {
	switch {
	case client != nil:
		return seed.GraphLoader{Repo: repository.New(client), Directed: cfg.Network.Directed}, "graph"
	case cfg.Network.SeedFile != "":
		loader := seed.FileLoader{Path: cfg.Network.SeedFile}
		if cfg.Network.Directed {
			loader.Directed = &cfg.Network.Directed
		}
		return loader, "file"
	default:
		builtin := seed.Builtin()
		builtin.Network.Directed = cfg.Network.Directed
		return builtin, "builtin"
	}
}

func graphOptions(cfg config.GraphConfig) graphdb.Options {
	return graphdb.Options{
		URI:            cfg.URI,
		Database:       cfg.Database,
		Username:       cfg.Username,
		Password:       cfg.Password,
		MaxConnections: cfg.MaxConnections,
	}
}

func listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}
