package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/limitedhq/limited-api/config"
	"github.com/limitedhq/limited-api/internal/infrastructure/mongodb"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// Standalone seeder: runs the same idempotent demo seed the server runs at
// startup, useful for resetting a fresh local database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.MongoMaxPool, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.DBName)
	if err := mongodb.Seed(ctx, mongodb.SeedStores{
		Funds:     mongodb.NewFundRepository(db),
		Companies: mongodb.NewCompanyRepository(db),
		Deals:     mongodb.NewDealRepository(db),
		Users:     mongodb.NewUserRepository(db),
	}, logger); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	fmt.Println("seed complete: demo accounts admin@limited.vc / manager@limited.vc / lp@limited.vc")
}
