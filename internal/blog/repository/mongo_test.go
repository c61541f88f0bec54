package repository

import (
	"context"
	"testing"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns object id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(context.Background(), blog.Candidate{"title": "T", "sections": []any{}, "conclusion": "C"})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		require.NoError(mt, err)
	})

	mt.Run("insert error propagates", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Insert(context.Background(), blog.Candidate{"title": "T", "conclusion": "C"})
		require.Error(mt, err)
	})

	mt.Run("list returns every document", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "title", Value: "First"}, {Key: "conclusion", Value: "C1"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "title", Value: "Second"}, {Key: "conclusion", Value: "C2"}},
		))

		list, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, id1, list[0]["_id"])
		require.Equal(mt, "First", list[0]["title"])
		require.Equal(mt, "C2", list[1]["conclusion"])
	})

	mt.Run("list on empty collection", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		list, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.NotNil(mt, list)
		require.Empty(mt, list)
	})
}
