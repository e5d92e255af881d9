package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/pkg/store"
)

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	coll := NewDatabase().Collection("meals")

	ack, err := coll.InsertOne(ctx, bson.M{"title": "Pasta", "userEmail": "a@x.com"})
	require.NoError(t, err)
	id, ok := ack.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	var doc bson.M
	require.NoError(t, coll.FindOne(ctx, store.ByID(id), &doc))
	assert.Equal(t, "Pasta", doc["title"])

	update, err := coll.UpdateOne(ctx, store.ByID(id), bson.M{"title": "Pasta"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, update.MatchedCount)
	assert.EqualValues(t, 0, update.ModifiedCount)

	deleted, err := coll.DeleteOne(ctx, store.ByID(id))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted.DeletedCount)

	assert.ErrorIs(t, coll.FindOne(ctx, store.ByID(id), &doc), store.ErrNotFound)
}

func TestFindSortAndLimit(t *testing.T) {
	ctx := context.Background()
	coll := NewDatabase().Collection("meals")
	for _, date := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		_, err := coll.InsertOne(ctx, bson.M{"date": date})
		require.NoError(t, err)
	}
	_, err := coll.InsertOne(ctx, bson.M{"title": "undated"})
	require.NoError(t, err)

	docs := []bson.M{}
	require.NoError(t, coll.Find(ctx, nil, store.FindOptions{SortField: "date", Limit: 3}, &docs))
	require.Len(t, docs, 3)
	assert.Nil(t, docs[0]["date"])
	assert.Equal(t, "2024-01-01", docs[1]["date"])
	assert.Equal(t, "2024-02-01", docs[2]["date"])
}

func TestFailNext(t *testing.T) {
	db := NewDatabase()
	db.Coll("orders").FailNext(assert.AnError)

	_, err := db.Collection("orders").InsertOne(context.Background(), bson.M{})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = db.Collection("orders").InsertOne(context.Background(), bson.M{})
	assert.NoError(t, err)
	assert.Equal(t, 1, db.Coll("orders").Len())
}
