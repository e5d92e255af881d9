package store

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DatabaseName is the only database the server talks to.
const DatabaseName = "LocalChefBazaarDB"

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

type (
	// Database hands out collections by name. Implementations are safe for
	// concurrent use.
	Database interface {
		Collection(name string) Collection
	}

	// Collection is the set of single-document operations the API performs
	// against one collection. Results are decoded into the value pointed to
	// by result/results, the same way the mongo driver decodes cursors.
	Collection interface {
		InsertOne(ctx context.Context, doc interface{}) (InsertAck, error)
		Find(ctx context.Context, filter bson.M, opts FindOptions, results interface{}) error
		FindOne(ctx context.Context, filter bson.M, result interface{}) error
		UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateAck, error)
		DeleteOne(ctx context.Context, filter bson.M) (DeleteAck, error)
	}

	// FindOptions narrows a Find. Zero values mean no limit and natural order.
	FindOptions struct {
		Limit int64
		// SortField sorts ascending on the named field when set.
		SortField string
	}
)

// ParseID converts the hex form used in URLs into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// ByID is the filter matching a single document identifier.
func ByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	cause := pkgerrors.Cause(err)
	if mongo.IsDuplicateKeyError(cause) {
		return true
	}
	return strings.Contains(cause.Error(), "duplicate key")
}

// FindDocuments runs Find into a fresh slice of loosely-typed documents. The
// result is never nil so an empty collection serializes as [].
func FindDocuments(ctx context.Context, coll Collection, filter bson.M, opts FindOptions) ([]bson.M, error) {
	docs := []bson.M{}
	if err := coll.Find(ctx, filter, opts, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}
