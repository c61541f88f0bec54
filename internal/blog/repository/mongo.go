package repository

import (
	"context"
	"fmt"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements Repository on a single MongoDB collection. Documents
// are inserted verbatim and get a driver-generated ObjectID.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, doc blog.Candidate) (string, error) {
	res, err := m.col.InsertOne(ctx, map[string]any(doc))
	if err != nil {
		return "", fmt.Errorf("insert blog: %w", err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

// List drains a full-collection cursor. Intended for small collections only.
func (m *MongoRepo) List(ctx context.Context) ([]map[string]any, error) {
	cur, err := m.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cur.Close(ctx)
	out := []map[string]any{}
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, map[string]any(d))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
