package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bizmatch/config"
	"bizmatch/internal/catalog"
	"bizmatch/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	// Validate the embedded data before writing anything
	if _, err := catalog.Default(); err != nil {
		log.Fatalf("Invalid embedded catalog: %v", err)
	}

	repo := repository.NewCatalogRepo(client.Database(cfg.MongoDatabase))
	if err := repo.Seed(ctx, catalog.Questions(), catalog.Businesses(), catalog.Archetypes()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seeded %d questions, %d businesses, %d archetypes",
		len(catalog.Questions()), len(catalog.Businesses()), len(catalog.Archetypes()))
}
