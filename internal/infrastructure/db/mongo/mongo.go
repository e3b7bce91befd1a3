// Package mongo backs the console's audit trail.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// DefaultDatabase is the console's database when MONGO_DB is unset.
const DefaultDatabase = "clinicos_console"

// Config captures the settings for the audit trail connection.
type Config struct {
	URI string
	// Database defaults to DefaultDatabase when empty.
	Database string
}

func (c Config) databaseName() string {
	if c.Database == "" {
		return DefaultDatabase
	}
	return c.Database
}

// Connect establishes the audit trail connection and verifies it against the
// primary, returning the client (for shutdown) and the console database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.databaseName()), nil
}
