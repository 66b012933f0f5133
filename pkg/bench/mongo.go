package bench

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/bestfirst/pkg/cache"
)

// Default MongoDB names.
const (
	DefaultDatabase   = "bestfirst"
	DefaultCollection = "bench_records"
)

// Store persists benchmark records.
type Store interface {
	Save(ctx context.Context, records []Record) error
	Load(ctx context.Context, runID string) ([]Record, error)
	Runs(ctx context.Context, limit int) ([]RunInfo, error)
	Close(ctx context.Context) error
}

// RunInfo summarizes one stored run.
type RunInfo struct {
	RunID     string    `bson:"_id"`
	Suite     string    `bson:"suite"`
	Records   int       `bson:"records"`
	StartedAt time.Time `bson:"started_at"`
}

// MongoStore keeps records in a MongoDB collection, one document per record.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and verifies the connection.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return cache.Retryable(fmt.Errorf("%w: ping mongodb: %v", cache.ErrNetwork, err))
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	coll := client.Database(DefaultDatabase).Collection(DefaultCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "run_id", Value: 1}, {Key: "test_case", Value: 1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &MongoStore{client: client, coll: coll}, nil
}

// Save inserts records.
func (s *MongoStore) Save(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]any, len(records))
	for i, r := range records {
		docs[i] = r
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}
	return nil
}

// Load returns the records of one run in insertion order.
func (s *MongoStore) Load(ctx context.Context, runID string) ([]Record, error) {
	cur, err := s.coll.Find(ctx, bson.M{"run_id": runID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	var out []Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("run %s: %w", runID, cache.ErrNotFound)
	}
	return out, nil
}

// Runs lists the most recent runs, newest first.
func (s *MongoStore) Runs(ctx context.Context, limit int) ([]RunInfo, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$run_id"},
			{Key: "suite", Value: bson.D{{Key: "$first", Value: "$suite"}}},
			{Key: "records", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "started_at", Value: bson.D{{Key: "$min", Value: "$created_at"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "started_at", Value: -1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate runs: %w", err)
	}
	var out []RunInfo
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode runs: %w", err)
	}
	return out, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
