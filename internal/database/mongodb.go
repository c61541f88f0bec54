package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
// Nested documents decode as maps so stored blogs render back as plain JSON objects.
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Store owns the process-wide Mongo client and hands out the blogs collection.
type Store struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewStore wraps an already connected client.
func NewStore(client *mongo.Client, database, collection string) *Store {
	return &Store{client: client, database: database, collection: collection}
}

// Open connects to uri and returns a Store bound to database.collection.
func Open(ctx context.Context, uri, database, collection string, timeout time.Duration) (*Store, error) {
	client, err := ConnectMongo(ctx, uri, timeout)
	if err != nil {
		return nil, err
	}
	return NewStore(client, database, collection), nil
}

// Collection returns the handle used for both inserts and full scans.
func (s *Store) Collection() *mongo.Collection {
	return s.client.Database(s.database).Collection(s.collection)
}

// Ping checks the server is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
