package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vanshika/trafficroute/internal/config"
	"github.com/vanshika/trafficroute/internal/graphdb"
	"github.com/vanshika/trafficroute/internal/logging"
	"github.com/vanshika/trafficroute/internal/repository"
	"github.com/vanshika/trafficroute/internal/seed"
	"github.com/vanshika/trafficroute/internal/service"
)

func main() {
	var (
		seedFile = flag.String("seed-file", "", "Path to a seed network JSON file (defaults to NETWORK_SEED_FILE, then the built-in city)")
		workers  = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *seedFile
	if path == "" {
		path = cfg.Network.SeedFile
	}
	var loader seed.Loader = seed.Builtin()
	if path != "" {
		loader = seed.FileLoader{Path: path}
	}

	net, err := loader.Load(ctx)
	if err != nil {
		logger.Error("failed to read seed network", "error", err, "path", path)
		os.Exit(1)
	}
	if err := seed.Validate(net); err != nil {
		logger.Error("seed network rejected", "error", err, "path", path)
		os.Exit(1)
	}

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("schema setup failed", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	ingestor := service.NewBulkIngestor(repo, *workers)
	logger.Info("ingesting network", "locations", len(net.LocationSet()), "roads", len(net.Roads), "workers", *workers)
	if err := ingestor.IngestNetwork(ctx, net); err != nil {
		var taskErr *service.TaskError
		if errors.As(err, &taskErr) {
			logger.Error("ingestion finished with failures", "failed", len(taskErr.Errors), "error", err)
		} else {
			logger.Error("ingestion failed", "error", err)
		}
		os.Exit(1)
	}

	stored, err := repo.CountRoads(ctx)
	if err != nil {
		logger.Warn("could not count stored roads", "error", err)
	}
	logger.Info("ingestion complete", "duration", time.Since(start).String(), "stored_roads", stored)
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graphdb.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for ingestion: %w", graphdb.ErrMissingURI)
	}
	opts := graphdb.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graphdb.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
