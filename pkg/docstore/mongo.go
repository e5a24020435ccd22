package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JagjeetChauhan/wasserstoff/models"
)

const (
	connectTimeout = 10 * time.Second
	opTimeout      = 5 * time.Second
)

// MongoStore implements Store on top of a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB, pings it, and binds the configured
// collection. Connection failure is fatal to the run: nothing can be
// persisted without a reachable store.
func NewMongoStore(ctx context.Context, cfg models.MongoConfig) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("can't ping MongoDB: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Insert appends one record to the collection. InsertOne, not upsert: the
// collection is append-only and duplicates on re-runs are expected.
func (s *MongoStore) Insert(ctx context.Context, record *models.Record) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert record for %s: %w", record.Filename, err)
	}
	return nil
}

// Aggregate returns the stored document count and mean file size. An empty
// collection yields {0, 0.0} rather than an error.
func (s *MongoStore) Aggregate(ctx context.Context) (Aggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_size", Value: bson.D{{Key: "$avg", Value: "$size"}}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return Aggregate{}, fmt.Errorf("aggregate query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Count   int64   `bson:"count"`
		AvgSize float64 `bson:"avg_size"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return Aggregate{}, fmt.Errorf("failed to decode aggregate result: %w", err)
	}

	if len(results) == 0 {
		return Aggregate{}, nil
	}
	return Aggregate{Count: results[0].Count, AverageSize: results[0].AvgSize}, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
