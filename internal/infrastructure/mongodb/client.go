package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the application.
const (
	CollFunds       = "funds"
	CollCompanies   = "companies"
	CollDeals       = "deals"
	CollUsers       = "users"
	CollInvestments = "investments"
)

// Connect establishes a MongoDB client and verifies the connection with a
// ping. The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string, maxPool uint64, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri).SetMaxPoolSize(maxPool)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
