package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	UsersCollection = "users"
	TodosCollection = "todos"
)

// Client owns the process-wide MongoDB handle.
type Client struct {
	client *mongo.Client
	dbName string
}

// Connect builds the client. The driver connects lazily, so an unreachable
// server only surfaces on the first operation (or Ping).
func Connect(ctx context.Context, mongoURL, dbName string) (*Client, error) {
	log.Info().Str("target", SafeTarget(mongoURL)).Msg("Connecting to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	log.Info().Str("database", dbName).Msg("MongoDB client ready")
	return &Client{client: client, dbName: dbName}, nil
}

// Database panics when the client was never connected or already closed.
func (c *Client) Database() *mongo.Database {
	if c == nil || c.client == nil {
		panic("database: Database called before Connect")
	}
	return c.client.Database(c.dbName)
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("database: not connected")
	}
	return c.client.Ping(ctx, nil)
}

// Disconnect is safe to call more than once.
func (c *Client) Disconnect(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	client := c.client
	c.client = nil

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	log.Info().Msg("MongoDB connection closed")
	return nil
}

// EnsureIndexes creates the lookup indexes used by the repositories. They are
// not unique; email/username uniqueness is checked by the user repository.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "username", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = db.Collection(TodosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "completed", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create todo indexes: %w", err)
	}

	log.Info().Msg("MongoDB indexes ensured")
	return nil
}

// SafeTarget renders a connection string without credentials. Plain
// mongodb:// URLs are reduced to their host list; SRV URLs are not parsed by
// the driver here since that would trigger a DNS lookup.
func SafeTarget(mongoURL string) string {
	if !strings.HasPrefix(mongoURL, connstring.SchemeMongoDBSRV+"://") {
		if cs, err := connstring.Parse(mongoURL); err == nil && len(cs.Hosts) > 0 {
			return connstring.SchemeMongoDB + "://" + strings.Join(cs.Hosts, ",")
		}
	}

	scheme, rest, found := strings.Cut(mongoURL, "://")
	if !found {
		scheme, rest = "", mongoURL
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}
	if scheme == "" {
		return rest
	}
	return scheme + "://" + rest
}
