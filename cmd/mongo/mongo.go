package mongoclient

import (
	"context"
	"fmt"
	"time"

	"github.com/hendrawans/marketplace/cmd/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// New connects the package-level Mongo client using the provided
// configuration and verifies connectivity.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("unable to connect mongo at %s: %w", cfg.Mongo.URI, err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		return fmt.Errorf("unable to ping mongo at %s: %w", cfg.Mongo.URI, err)
	}

	client = c
	database = c.Database(cfg.Mongo.Database)
	return nil
}

// DB returns the configured database handle.
func DB() *mongo.Database {
	return database
}

func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
