package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	mongoDatabase struct {
		db *mongo.Database
	}

	mongoCollection struct {
		coll *mongo.Collection
	}
)

func NewMongoDatabase(db *mongo.Database) Database {
	return &mongoDatabase{db: db}
}

func (d *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{coll: d.db.Collection(name)}
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (InsertAck, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return InsertAck{}, errors.Wrapf(err, "inserting document into '%s'", c.coll.Name())
	}
	return InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, results interface{}) error {
	findOpts := options.Find()
	if opts.SortField != "" {
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: 1}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := c.coll.Find(ctx, nonNil(filter), findOpts)
	if err != nil {
		return errors.Wrapf(err, "finding documents in '%s'", c.coll.Name())
	}
	if err := cursor.All(ctx, results); err != nil {
		return errors.Wrapf(err, "decoding documents from '%s'", c.coll.Name())
	}
	return nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	err := c.coll.FindOne(ctx, nonNil(filter)).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return errors.Wrapf(err, "finding document in '%s'", c.coll.Name())
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateAck, error) {
	res, err := c.coll.UpdateOne(ctx, nonNil(filter), bson.M{"$set": set})
	if err != nil {
		return UpdateAck{}, errors.Wrapf(err, "updating document in '%s'", c.coll.Name())
	}
	return UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (DeleteAck, error) {
	res, err := c.coll.DeleteOne(ctx, nonNil(filter))
	if err != nil {
		return DeleteAck{}, errors.Wrapf(err, "deleting document from '%s'", c.coll.Name())
	}
	return DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func nonNil(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
