package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// MongoConfig holds the query-history database settings
type MongoConfig struct {
	URI      string
	Database string
	Username string
	Password string
}

// Mongo owns the MongoDB client used for query history
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongo connects and pings MongoDB
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	if cfg.Username != "" && cfg.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	return &Mongo{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

// Database returns the configured history database
func (m *Mongo) Database() *mongo.Database {
	return m.database
}

// Close disconnects the client
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
