package repository

import (
	"context"
	"time"

	"flight-query-service/internal/domain/entity"
	"flight-query-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoQueryHistoryRepository implements QueryHistoryRepository
type MongoQueryHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoQueryHistoryRepository creates a new query history repository
func NewMongoQueryHistoryRepository(db *mongo.Database) repository.QueryHistoryRepository {
	collection := db.Collection("query_history")

	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "operation", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.M{"status": 1}},
	})

	return &MongoQueryHistoryRepository{
		collection: collection,
	}
}

// Save inserts one history entry
func (r *MongoQueryHistoryRepository) Save(ctx context.Context, entry *entity.QueryHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}
