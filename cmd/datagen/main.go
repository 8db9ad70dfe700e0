package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vanshika/trafficroute/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		locations   = flag.Int("locations", cfg.NumLocations, "number of locations to generate")
		extraLinks  = flag.Int("extra-links", cfg.ExtraLinks, "additional nearest-neighbour roads per location")
		minutes     = flag.Float64("minutes-per-unit", cfg.MinutesPerUnit, "travel minutes per unit of map distance")
		congestion  = flag.Float64("congestion", cfg.Congestion, "how strongly the noise field slows roads down")
		directed    = flag.Bool("directed", cfg.Directed, "generate one-way roads in both directions")
		seed        = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		output      = flag.String("output", "data/network.json", "path of the seed network file")
		writeStdout = flag.Bool("stdout", false, "write the network to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumLocations:   *locations,
		ExtraLinks:     *extraLinks,
		MinutesPerUnit: *minutes,
		Congestion:     *congestion,
		Directed:       *directed,
		Seed:           *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	net, err := generator.New(genCfg).Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(net); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write network to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteNetwork(net, *output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write network: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d locations and %d roads into %s\n", len(net.Locations), len(net.Roads), *output)
}
