package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/regnetkit/regnet"
	"github.com/regnetkit/regnet/cache"
	"github.com/regnetkit/regnet/core/build"
	"github.com/regnetkit/regnet/helper"
	"github.com/regnetkit/regnet/model"
	"github.com/regnetkit/regnet/omnipath"
)

func main() {
	// Start a test PostgreSQL container for the snapshot cache
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		User:     "postgres",
		Password: "postgres",
		Name:     "regnet_test",
		Schema:   "public",
	}

	logger := slog.New(helper.NewPrettyHandler(os.Stdout, helper.PrettyHandlerOptions{}))
	db := helper.NewDatabase("snapshots", dbConfig, logger)
	defer db.Close()

	handler, err := cache.NewSnapshotsDBHandler(db, false)
	if err != nil {
		log.Fatalf("Failed to set up snapshot cache: %v", err)
	}

	r := regnet.New(&regnet.Config{
		Omnipath: omnipath.Config{
			Cache: cache.NewStore(handler, logger),
		},
	})

	ctx := context.Background()

	// Confidence-weighted regulons, tiers A and B only
	regulons, err := r.Dorothea(ctx, "human", build.DorotheaOptions{
		Levels: []model.ConfidenceTier{model.TierA, model.TierB},
	})
	if err != nil {
		log.Fatalf("Failed to build regulon network: %v", err)
	}
	fmt.Printf("Regulon network: %d edges\n", len(regulons))
	for _, edge := range regulons[:min(5, len(regulons))] {
		fmt.Printf("  %s -> %s (mor %.2f, tier %s)\n", edge.Source, edge.Target, edge.Mor, edge.Confidence)
	}

	// Complex-aware transcriptional network with provenance metadata
	transcriptional, err := r.Collectri(ctx, "human", build.CollectriOptions{LoadMeta: true})
	if err != nil {
		log.Fatalf("Failed to build transcriptional network: %v", err)
	}
	fmt.Printf("Transcriptional network: %d edges\n", len(transcriptional))

	// Pathway-response network, 100 most significant targets per pathway
	pathways, err := r.Progeny(ctx, "human", 100)
	if err != nil {
		log.Fatalf("Failed to build pathway network: %v", err)
	}
	fmt.Printf("Pathway network: %d edges\n", len(pathways))
}
